package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

type entry[T any] struct {
	pattern  string
	segments []Segment
	handler  T
}

// capture records where one param or splat landed in the combined expression.
type capture struct {
	group int    // capture group number within the combined regexp
	name  string // public name; SplatParam for splats
}

// compiled is the immutable result of lowering a route table into one
// combined regular expression. It is never mutated after construction;
// rebuilding produces a fresh instance.
type compiled[T any] struct {
	re       *regexp.Regexp // nil for the empty table (matches nothing)
	entries  []*entry[T]
	outer    []int       // entry index -> outer capture group number
	captures [][]capture // entry index -> param/splat captures
}

// compileEntries lowers each entry to an anchored sub-expression wrapped in
// its own outer capturing group and joins them into a single alternation.
// Static segments are quoted so regexp metacharacters match themselves.
// Param and splat captures get a per-occurrence serial in their group name
// (Go's regexp rejects duplicate group names); the captures side table maps
// each group back to its public name, and the outer side table maps the
// group that wrapped entry k back to k.
//
// Never fails on parsed input: validation happened at ParsePattern time.
func compileEntries[T any](entries []*entry[T]) *compiled[T] {
	if len(entries) == 0 {
		// An empty alternation would match the empty string. The empty
		// table's matcher must match nothing, ever.
		return &compiled[T]{}
	}

	var b strings.Builder
	b.WriteString("(?s)^(?:")

	outer := make([]int, len(entries))
	captures := make([][]capture, len(entries))
	group := 0
	serial := 0

	for k, ent := range entries {
		if k > 0 {
			b.WriteByte('|')
		}

		group++
		outer[k] = group
		b.WriteByte('(')

		for i, seg := range ent.segments {
			if i > 0 {
				b.WriteByte('/')
			}
			switch seg.Type {
			case SegmentParam:
				group++
				serial++
				fmt.Fprintf(&b, "(?P<p%d>[^/]+)", serial)
				captures[k] = append(captures[k], capture{group: group, name: seg.Value})
			case SegmentSplat:
				group++
				serial++
				fmt.Fprintf(&b, "(?P<s%d>.*)", serial)
				captures[k] = append(captures[k], capture{group: group, name: SplatParam})
			default:
				b.WriteString(regexp.QuoteMeta(seg.Value))
			}
		}

		b.WriteByte(')')
	}

	b.WriteString(")$")

	return &compiled[T]{
		re:       regexp.MustCompile(b.String()),
		entries:  entries,
		outer:    outer,
		captures: captures,
	}
}

// match runs the combined expression once against the full path. Go's regexp
// alternation commits to the first alternative that can complete the match,
// so the first participating outer group identifies the first registered
// pattern that matches -- registration order is the sole tie-break.
func (c *compiled[T]) match(path string) (*Match[T], bool) {
	if c.re == nil {
		return nil, false
	}

	idx := c.re.FindStringSubmatchIndex(path)
	if idx == nil {
		return nil, false
	}

	for k, g := range c.outer {
		if idx[2*g] < 0 {
			continue
		}

		m := &Match[T]{
			Pattern: c.entries[k].pattern,
			Handler: c.entries[k].handler,
		}

		if caps := c.captures[k]; len(caps) > 0 {
			params := make(Params, len(caps))
			for _, cp := range caps {
				start, end := idx[2*cp.group], idx[2*cp.group+1]
				if start < 0 {
					continue
				}
				params[cp.name] = path[start:end]
			}
			m.Params = params
		}

		return m, true
	}

	return nil, false
}
