package parser_test

import (
	"testing"

	"github.com/yaklabco/gotsdoc/pkg/docast"
	"github.com/yaklabco/gotsdoc/pkg/parser"
)

// FuzzReadTokens fuzzes the tokenizer with random input.
func FuzzReadTokens(f *testing.F) {
	seeds := []string{
		"",
		"/** plain summary */",
		"/**\n * line one\n * line two\n */",
		"/** @param x - the operand */",
		"/** {@link Widget | display} */",
		"/** `code` and ```\nfence\n``` */",
		"/** <b attr=\"v\">html</b> */",
		"/** \\{ escaped \\@ */",
		"bare text without framing",
		"line1\r\nline2",
		"héllo wörld € 🚀",
		"/** @",
		"{@",
		"/** unterminated",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		// Tokenizing should never panic.
		lines := parser.ExtractLines(text)
		tokens := parser.ReadTokens(lines)

		// The stream must satisfy the reconstruction invariant: per line,
		// concatenated token text rebuilds that line exactly.
		if !docast.ValidateTokens(tokens, lines) {
			t.Errorf("invalid token stream for %q", text)
		}
	})
}

// FuzzParse fuzzes the full parser with random input.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"/** summary */",
		"/**\n * @remarks detail\n * @param a - first\n */",
		"/** @beta @internal @unknownTag */",
		"/** {@link a|b} {@inheritDoc c} */",
		"/** {@link unterminated",
		"/** ``` */",
		"/** <b attr= */",
		"/** \\x \\\\ \\",
		"@deprecated",
		"* * */ /**",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		// Parsing must be total: no panic, no nil AST, for any input.
		ctx := parser.Parse(text)

		if ctx.Comment == nil {
			t.Fatal("Parse returned a nil comment node")
		}
		if ctx.Log == nil {
			t.Fatal("Parse returned a nil message log")
		}

		// Parsing twice yields the same structure.
		again := parser.Parse(text)
		if docast.Dump(ctx.Comment) != docast.Dump(again.Comment) {
			t.Error("parse is not deterministic")
		}
	})
}
