package nav

import (
	"io"
	"net/url"

	"golang.org/x/net/html"
)

// InternalHrefs parses an HTML document and returns, in document order, the
// pathnames of anchor hrefs that stay on the given origin (e.g.
// "https://example.com"): relative hrefs and absolute hrefs whose scheme and
// host match. These are the links a caller would intercept and route through
// a Controller instead of letting a full page load happen. Unparseable
// hrefs, other origins, and fragment-only links are skipped.
func InternalHrefs(r io.Reader, origin string) ([]string, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var paths []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if path, ok := internalPath(n, base); ok {
				paths = append(paths, path)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return paths, nil
}

func internalPath(anchor *html.Node, base *url.URL) (string, bool) {
	var href string
	for _, attr := range anchor.Attr {
		if attr.Key == "href" {
			href = attr.Val
			break
		}
	}
	if href == "" {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" && u.Scheme != base.Scheme {
		return "", false
	}
	if u.Host != "" && u.Host != base.Host {
		return "", false
	}
	if u.Path == "" {
		// fragment-only or query-only link
		return "", false
	}

	return u.Path, true
}
