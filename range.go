package meta

import "fmt"

// Range is a (offset, length) pair addressing a span of the input in
// characters. Empty ranges are legal and used as anchors for
// zero-width events.
type Range struct {
	Offset int
	Length int
}

// NewRange builds a Range from an offset and a length.
func NewRange(offset, length int) Range {
	return Range{Offset: offset, Length: length}
}

// EmptyRange returns a zero-length Range anchored at offset.
func EmptyRange(offset int) Range {
	return Range{Offset: offset, Length: 0}
}

// NextOffset returns the offset right after the range.
func (r Range) NextOffset() int {
	return r.Offset + r.Length
}

// Subtract returns the range spanning from start.Offset to r's end,
// used to compute the total consumed range of a composite rule from
// its first child's start and its last child's end.
func (r Range) Subtract(start Range) Range {
	return Range{Offset: start.Offset, Length: r.NextOffset() - start.Offset}
}

// Text slices input by the range, assuming input is addressed the
// same way the range was produced (characters).
func (r Range) Text(input []rune) string {
	return string(input[r.Offset:r.NextOffset()])
}

func (r Range) String() string {
	if r.Length == 0 {
		return fmt.Sprintf("%d", r.Offset)
	}
	return fmt.Sprintf("%d..%d", r.Offset, r.NextOffset())
}
