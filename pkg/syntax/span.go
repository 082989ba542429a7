package syntax

import "fmt"

// TextSpan is an absolute byte range in the source, half-open.
type TextSpan struct {
	// Start is the byte offset where the span begins (inclusive).
	Start int

	// Length is the span's width in bytes.
	Length int
}

// SpanFromBounds builds a span from inclusive start and exclusive end.
func SpanFromBounds(start, end int) TextSpan {
	if end < start {
		panic("syntax: span end before start")
	}
	return TextSpan{Start: start, Length: end - start}
}

// End returns the offset just past the span.
func (s TextSpan) End() int { return s.Start + s.Length }

// IsEmpty reports whether the span has zero length.
func (s TextSpan) IsEmpty() bool { return s.Length == 0 }

// Contains reports whether the offset lies within the span.
func (s TextSpan) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End()
}

// String renders the span as [start..end).
func (s TextSpan) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End())
}
