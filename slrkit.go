package slrkit

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Scanners define their own constants;
// package lr/scanner replicates the ones of text/scanner.
type TokType int

// Token represents an input token, usually produced by a scanner. The parser
// maps each token to a terminal symbol of the grammar before consulting the
// parsing table.
//
//    TokType = scanner.Ident   // category of the token (scanner specific)
//    Lexeme  = "count"         // lexeme as it appeared in the input stream
//    Span    = 67…72           // input positions covered by the token
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans -----------------------------------------------------------------

// Span captures a run of input positions. The parser tracks for every
// terminal and every reduced non-terminal which input positions it covers.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, which epsilon-reductions produce.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other. Null spans
// do not contribute.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
