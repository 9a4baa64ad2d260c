package parser_test

import (
	"testing"

	"github.com/yaklabco/gotsdoc/pkg/parser"
)

func extractTexts(text string) []string {
	lines := parser.ExtractLines(text)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out
}

func assertLines(t *testing.T, input string, want []string) {
	t.Helper()

	got := extractTexts(input)
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractLinesFramed(t *testing.T) {
	t.Parallel()

	assertLines(t,
		"/**\n * Returns the average.\n *\n * @remarks\n * Slow.\n */",
		[]string{"Returns the average.", "", "@remarks", "Slow."})
}

func TestExtractLinesSingleLineFramed(t *testing.T) {
	t.Parallel()

	assertLines(t, "/** The half-open interval. */", []string{"The half-open interval."})
}

func TestExtractLinesContentOnOpenerLine(t *testing.T) {
	t.Parallel()

	assertLines(t, "/** First line\n * second line\n */",
		[]string{"First line", "second line"})
}

func TestExtractLinesBareText(t *testing.T) {
	t.Parallel()

	assertLines(t, "just text\nsecond line", []string{"just text", "second line"})
}

func TestExtractLinesCRLF(t *testing.T) {
	t.Parallel()

	assertLines(t, "/**\r\n * alpha\r\n * beta\r\n */",
		[]string{"alpha", "beta"})
}

func TestExtractLinesUndecoratedInterior(t *testing.T) {
	t.Parallel()

	// Interior lines without a leading "*" keep their text, minus leading
	// whitespace consumed by decoration stripping.
	assertLines(t, "/**\nalpha\nbeta\n*/", []string{"alpha", "beta"})
}

func TestExtractLinesEmptyComment(t *testing.T) {
	t.Parallel()

	assertLines(t, "/** */", nil)
	assertLines(t, "/**/", nil)
	assertLines(t, "", nil)
}

func TestExtractLinesExtraStarsInOpener(t *testing.T) {
	t.Parallel()

	assertLines(t, "/*** banner\n * body\n */", []string{"banner", "body"})
}

func TestExtractLinesAreZeroCopy(t *testing.T) {
	t.Parallel()

	input := "/** Hello */"
	lines := parser.ExtractLines(input)
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].Buffer != input {
		t.Error("line ranges must alias the original buffer")
	}
	if input[lines[0].Pos:lines[0].End] != "Hello" {
		t.Errorf("line bounds [%d,%d) do not cover the body", lines[0].Pos, lines[0].End)
	}
}
