package wary

import "fmt"

// Span is a half-open byte range [Start, End) relative to the start of
// the original input buffer. It never owns data; it only reports where
// inside an Input something happened.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start >= s.End
}

// Contains reports whether other lies entirely within s. An empty span
// is contained if its position is within s's bounds.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// ContainsOffset reports whether the byte offset lies within s.
func (s Span) ContainsOffset(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	return Span{
		Start: min(s.Start, other.Start),
		End:   max(s.End, other.End),
	}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End)
}
