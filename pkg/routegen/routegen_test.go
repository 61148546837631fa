package routegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type userFilesInput struct {
	Recursive bool   `json:"recursive"`
	SortBy    string `json:"sortBy"`
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	err := Generate(Opts{
		OutDest: dir,
		Routes: []Def{
			{Name: "Home", Pattern: "/"},
			{Name: "UserFiles", Pattern: "/users/:id/files/*", Input: userFilesInput{}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "routes.ts"))
	if err != nil {
		t.Fatal(err)
	}
	ts := string(content)

	for _, want := range []string{
		`pattern: "/"`,
		`pattern: "/users/:id/files/*"`,
		`params: ["id"] as const`,
		`hasSplat: true`,
		`export type HomeInput = undefined;`,
		`export interface UserFilesInput {`,
		`recursive`,
		`export const ROUTE_DEFS = [Home,UserFiles] as const;`,
	} {
		if !strings.Contains(ts, want) {
			t.Errorf("generated routes.ts missing %q\n\n%s", want, ts)
		}
	}
}

func TestGenerateRejectsBadPattern(t *testing.T) {
	err := Generate(Opts{
		OutDest: t.TempDir(),
		Routes:  []Def{{Name: "Bad", Pattern: "/files/*/more"}},
	})
	if err == nil {
		t.Error("misplaced splat: error = nil")
	}
}
