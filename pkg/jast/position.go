package jast

// Range is a half-open byte range [Start, End) in the source content.
// Nodes built in memory carry NoRange.
type Range struct {
	Start int
	End   int
}

// NoRange marks a node or token that never occupied source text.
var NoRange = Range{Start: -1, End: -1}

// IsValid reports whether the range refers to real source bytes.
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.End >= r.Start
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return other.Start >= r.Start && other.End <= r.End
}

// ContainsOffset reports whether offset falls inside r.
func (r Range) ContainsOffset(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps reports whether the two ranges share at least one byte.
func (r Range) Overlaps(other Range) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return r.Start < other.End && other.Start < r.End
}

// Position represents a 1-based line and column in a file.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}
