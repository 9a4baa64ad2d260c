// Package docast provides the core documentation-comment representation for
// gotsdoc. It defines a lossless, immutable view of a doc comment including:
// - TextRange: zero-copy views over the original source buffer
// - Token stream: classified spans of the comment body lines
// - AST nodes: structural representation referencing source excerpts
package docast

// TextRange is an immutable view over a slice of a source buffer.
// Multiple ranges may alias the same buffer; a range is never mutated
// after construction.
type TextRange struct {
	// Buffer is the full source text this range points into.
	Buffer string

	// Pos is the byte index where the range begins (inclusive).
	Pos int

	// End is the byte index where the range ends (exclusive).
	End int
}

// EmptyRange is the canonical empty range over an empty buffer.
//
//nolint:gochecknoglobals // Read-only singleton.
var EmptyRange = TextRange{}

// NewTextRange returns a range covering the whole buffer.
func NewTextRange(buffer string) TextRange {
	return TextRange{Buffer: buffer, Pos: 0, End: len(buffer)}
}

// Sub returns a new range over the same buffer with narrowed bounds.
// Bounds must satisfy 0 <= pos <= end <= len(Buffer); like a slice
// expression, invalid bounds panic.
func (r TextRange) Sub(pos, end int) TextRange {
	if pos < 0 || end < pos || end > len(r.Buffer) {
		panic("docast: TextRange.Sub bounds out of range")
	}
	return TextRange{Buffer: r.Buffer, Pos: pos, End: end}
}

// Text returns the source text covered by this range.
func (r TextRange) Text() string {
	return r.Buffer[r.Pos:r.End]
}

// Len returns the length of the range in bytes.
func (r TextRange) Len() int {
	return r.End - r.Pos
}

// IsEmpty returns true if the range has zero length.
func (r TextRange) IsEmpty() bool {
	return r.Pos == r.End
}

// Equal reports whether two ranges have the same bounds.
func (r TextRange) Equal(other TextRange) bool {
	return r.Pos == other.Pos && r.End == other.End
}

// Contains returns true if the given offset is within this range.
func (r TextRange) Contains(offset int) bool {
	return offset >= r.Pos && offset < r.End
}

// Location converts a byte offset in the buffer to 1-based line and column
// numbers. Column counts bytes, not runes. Returns (0, 0) if the offset is
// out of range.
func (r TextRange) Location(offset int) (int, int) {
	if offset < 0 || offset > len(r.Buffer) {
		return 0, 0
	}

	line := 1
	col := 1
	for i := 0; i < offset; i++ {
		if r.Buffer[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// StartLocation returns the 1-based line and column of the range start.
func (r TextRange) StartLocation() (int, int) {
	return r.Location(r.Pos)
}
