package matcher

import (
	"strconv"
	"strings"
)

type SegmentType uint8

const (
	SegmentStatic SegmentType = iota
	SegmentParam
	SegmentSplat
)

// Segment is one "/"-delimited unit of a pattern. For static segments, Value
// is the literal text (compared byte-for-byte against the incoming path
// segment, no decoding). For param segments, Value is the parameter name. For
// splat segments, Value is empty.
type Segment struct {
	Value string
	Type  SegmentType
}

// ConstructionError is returned when a pattern cannot be registered: a splat
// segment somewhere other than the final position, or a parameter name
// repeated within one pattern. It is always caller-fixable.
type ConstructionError struct {
	Pattern string
	Reason  string
}

func (e *ConstructionError) Error() string {
	return "matcher: invalid pattern " + strconv.Quote(e.Pattern) + ": " + e.Reason
}

// ParsePattern splits a pattern on "/" and classifies each piece. The empty
// pattern yields a single empty static segment (the root). Classification is
// exclusive: "*" is a splat, ":name" (letter first, alphanumeric rest) is a
// param, and anything else is static -- including pieces that merely resemble
// the param or splat grammar.
func ParsePattern(pattern string) ([]Segment, error) {
	pieces := strings.Split(pattern, "/")
	segments := make([]Segment, 0, len(pieces))

	var paramNames []string

	for i, piece := range pieces {
		switch {
		case piece == "*":
			if i != len(pieces)-1 {
				return nil, &ConstructionError{Pattern: pattern, Reason: "splat segment must be final"}
			}
			segments = append(segments, Segment{Type: SegmentSplat})

		case isParamPiece(piece):
			name := piece[1:]
			for _, existing := range paramNames {
				if existing == name {
					return nil, &ConstructionError{
						Pattern: pattern,
						Reason:  "parameter name " + strconv.Quote(name) + " used more than once",
					}
				}
			}
			paramNames = append(paramNames, name)
			segments = append(segments, Segment{Value: name, Type: SegmentParam})

		default:
			segments = append(segments, Segment{Value: piece, Type: SegmentStatic})
		}
	}

	return segments, nil
}

// isParamPiece reports whether a piece matches ^:[A-Za-z][A-Za-z0-9]*$.
func isParamPiece(piece string) bool {
	if len(piece) < 2 || piece[0] != ':' || !isAlpha(piece[1]) {
		return false
	}
	for i := 2; i < len(piece); i++ {
		if !isAlpha(piece[i]) && !isDigit(piece[i]) {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
