// Package href reconstructs literal paths from patterns and parameter values.
// It is the structural inverse of pattern matching: param and splat segments
// are substituted with percent-encoded values, static segments pass through
// untouched.
package href

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/wayfind-go/wayfind/pkg/errutil"
	"github.com/wayfind-go/wayfind/pkg/lru"
	"github.com/wayfind-go/wayfind/pkg/matcher"
)

// Patterns are typically built from a small fixed set, so parses are memoized.
var parsedPatterns = lru.New[string, []matcher.Segment](1_000)

// Build substitutes params into pattern. Every param segment needs a value
// under its name; a splat segment needs a value under matcher.SplatParam
// (which may be empty, and whose "/" separators are preserved). Values are
// percent-encoded per path segment.
func Build(pattern string, params matcher.Params) (string, error) {
	segments, found := parsedPatterns.Get(pattern)
	if !found {
		var err error
		segments, err = matcher.ParsePattern(pattern)
		if err != nil {
			return "", errutil.Maybe("href", err)
		}
		parsedPatterns.Set(pattern, segments)
	}

	var b strings.Builder

	for i, seg := range segments {
		if i > 0 {
			b.WriteByte('/')
		}

		switch seg.Type {
		case matcher.SegmentParam:
			val, ok := params[seg.Value]
			if !ok {
				return "", fmt.Errorf("href: missing value for parameter %q in pattern %q", seg.Value, pattern)
			}
			b.WriteString(url.PathEscape(val))

		case matcher.SegmentSplat:
			val, ok := params[matcher.SplatParam]
			if !ok {
				return "", fmt.Errorf("href: missing splat value for pattern %q", pattern)
			}
			writeSplat(&b, val)

		default:
			b.WriteString(seg.Value)
		}
	}

	return b.String(), nil
}

// writeSplat escapes each piece of the splat remainder while keeping its "/"
// separators as separators.
func writeSplat(b *strings.Builder, val string) {
	for i, piece := range strings.Split(val, "/") {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(url.PathEscape(piece))
	}
}
