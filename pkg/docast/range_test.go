package docast_test

import (
	"testing"

	"github.com/yaklabco/gotsdoc/pkg/docast"
)

func TestNewTextRangeCoversBuffer(t *testing.T) {
	t.Parallel()

	r := docast.NewTextRange("hello world")

	if r.Pos != 0 || r.End != 11 {
		t.Errorf("expected [0,11), got [%d,%d)", r.Pos, r.End)
	}
	if r.Text() != "hello world" {
		t.Errorf("Text() = %q", r.Text())
	}
	if r.Len() != 11 {
		t.Errorf("Len() = %d", r.Len())
	}
}

func TestSubNarrowsWithoutCopying(t *testing.T) {
	t.Parallel()

	r := docast.NewTextRange("hello world")
	sub := r.Sub(6, 11)

	if sub.Text() != "world" {
		t.Errorf("Sub text = %q", sub.Text())
	}
	if sub.Buffer != r.Buffer {
		t.Error("Sub must alias the same buffer")
	}

	// Narrowing a narrowed range still addresses the original buffer.
	inner := sub.Sub(6, 8)
	if inner.Text() != "wo" {
		t.Errorf("nested Sub text = %q", inner.Text())
	}
}

func TestSubPanicsOnInvalidBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		pos, end int
	}{
		{"negative pos", -1, 3},
		{"end before pos", 5, 2},
		{"end past buffer", 0, 99},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Errorf("Sub(%d, %d) did not panic", tc.pos, tc.end)
				}
			}()
			docast.NewTextRange("hello").Sub(tc.pos, tc.end)
		})
	}
}

func TestEmptyRange(t *testing.T) {
	t.Parallel()

	if !docast.EmptyRange.IsEmpty() {
		t.Error("EmptyRange must be empty")
	}
	if docast.EmptyRange.Text() != "" {
		t.Error("EmptyRange text must be empty")
	}

	r := docast.NewTextRange("abc").Sub(1, 1)
	if !r.IsEmpty() {
		t.Error("zero-width Sub must be empty")
	}
	if r.Contains(1) {
		t.Error("empty range contains no offsets")
	}
}

func TestEqualComparesBoundsOnly(t *testing.T) {
	t.Parallel()

	a := docast.NewTextRange("abcdef").Sub(1, 4)
	b := docast.NewTextRange("xyzdef").Sub(1, 4)

	if !a.Equal(b) {
		t.Error("ranges with identical bounds must compare equal")
	}
	if a.Equal(a.Sub(1, 3)) {
		t.Error("ranges with different bounds must not compare equal")
	}
}

func TestLocation(t *testing.T) {
	t.Parallel()

	r := docast.NewTextRange("first\nsecond\nthird")

	cases := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{5, 1, 6},  // the newline itself belongs to line 1
		{6, 2, 1},  // first char of "second"
		{13, 3, 1}, // first char of "third"
		{18, 3, 6}, // end of buffer is a valid location
	}

	for _, tc := range cases {
		line, col := r.Location(tc.offset)
		if line != tc.line || col != tc.col {
			t.Errorf("Location(%d) = (%d,%d), want (%d,%d)",
				tc.offset, line, col, tc.line, tc.col)
		}
	}

	if line, col := r.Location(-1); line != 0 || col != 0 {
		t.Error("out-of-range offset must yield (0,0)")
	}
	if line, col := r.Location(99); line != 0 || col != 0 {
		t.Error("out-of-range offset must yield (0,0)")
	}
}
