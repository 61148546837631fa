package nav

import (
	"reflect"
	"strings"
	"testing"
)

func TestInternalHrefs(t *testing.T) {
	doc := `<!DOCTYPE html>
<html>
<body>
	<a href="/users/1">one</a>
	<nav><a href="/about">about</a></nav>
	<a href="https://example.com/docs">same origin absolute</a>
	<a href="https://other.com/external">other origin</a>
	<a href="http://example.com/wrong-scheme">wrong scheme</a>
	<a href="//cdn.example.net/lib.js">scheme relative, other host</a>
	<a href="#section">fragment only</a>
	<a href="?page=2">query only</a>
	<a name="anchor-without-href">no href</a>
	<a href="relative/path">relative</a>
</body>
</html>`

	got, err := InternalHrefs(strings.NewReader(doc), "https://example.com")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"/users/1", "/about", "/docs", "relative/path"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InternalHrefs() = %v, want %v", got, want)
	}
}

func TestInternalHrefsBadOrigin(t *testing.T) {
	if _, err := InternalHrefs(strings.NewReader("<a href='/x'>x</a>"), "://not-a-url"); err == nil {
		t.Error("bad origin: error = nil")
	}
}
