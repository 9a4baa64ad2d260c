package parser

import (
	"sync"

	"github.com/yaklabco/gotsdoc/pkg/docast"
)

// commonMarkPunctuation is the ASCII punctuation set; each of these
// characters is independently significant to the grammar, so punctuation
// tokens never merge into runs.
const commonMarkPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// charKinds maps an ASCII code to its token kind. Built once on first use
// from fixed character sets and never mutated afterwards; it depends on no
// external input, so memoizing it per process is safe.
//
//nolint:gochecknoglobals // Lazily-built, read-only classification table.
var (
	charKinds     [128]docast.TokenKind
	charKindsOnce sync.Once
)

func classificationTable() *[128]docast.TokenKind {
	charKindsOnce.Do(func() {
		for i := range charKinds {
			charKinds[i] = docast.TokOther
		}
		for c := 'a'; c <= 'z'; c++ {
			charKinds[c] = docast.TokAsciiWord
		}
		for c := 'A'; c <= 'Z'; c++ {
			charKinds[c] = docast.TokAsciiWord
		}
		for c := '0'; c <= '9'; c++ {
			charKinds[c] = docast.TokAsciiWord
		}
		charKinds[' '] = docast.TokSpacing
		charKinds['\t'] = docast.TokSpacing
		for _, c := range commonMarkPunctuation {
			charKinds[c] = docast.TokOtherPunctuation
		}
		// Seven symbols with a distinct syntactic role get their own kind.
		charKinds['\\'] = docast.TokBackslash
		charKinds['<'] = docast.TokLessThan
		charKinds['>'] = docast.TokGreaterThan
		charKinds['='] = docast.TokEquals
		charKinds['\''] = docast.TokSingleQuote
		charKinds['"'] = docast.TokDoubleQuote
		charKinds['/'] = docast.TokSlash
	})
	return &charKinds
}

// classify returns the token kind for a single byte.
func classify(c byte) docast.TokenKind {
	if c < 128 {
		return classificationTable()[c]
	}
	return docast.TokOther
}

// ReadTokens converts an ordered sequence of comment body lines into a flat
// token sequence. A run of adjacent same-kind characters merges into one
// token, except punctuation, which is always emitted as single-character
// tokens. Each line is terminated by a zero-length Newline token anchored at
// its end offset, and the stream by a single zero-length EndOfInput token.
//
// Invariant: concatenating the text of every non-synthetic token of a line
// reconstructs that line exactly.
func ReadTokens(lines []docast.TextRange) []docast.Token {
	tokens := make([]docast.Token, 0, estimateTokenCount(lines))

	for _, line := range lines {
		tokens = appendLineTokens(tokens, line)
		tokens = append(tokens, docast.Token{
			Kind:  docast.TokNewline,
			Range: line.Sub(line.End, line.End),
			Line:  line,
		})
	}

	endRange := docast.EmptyRange
	endLine := docast.EmptyRange
	if len(lines) > 0 {
		last := lines[len(lines)-1]
		endRange = last.Sub(last.End, last.End)
		endLine = last
	}
	tokens = append(tokens, docast.Token{
		Kind:  docast.TokEndOfInput,
		Range: endRange,
		Line:  endLine,
	})

	return tokens
}

// appendLineTokens scans one line left to right, merging same-kind runs.
func appendLineTokens(tokens []docast.Token, line docast.TextRange) []docast.Token {
	pos := line.Pos
	for pos < line.End {
		kind := classify(line.Buffer[pos])
		end := pos + 1

		// Punctuation never merges; other kinds consume the whole run.
		if !kind.IsPunctuationKind() {
			for end < line.End && classify(line.Buffer[end]) == kind {
				end++
			}
		}

		tokens = append(tokens, docast.Token{
			Kind:  kind,
			Range: line.Sub(pos, end),
			Line:  line,
		})
		pos = end
	}
	return tokens
}

// estimateTokenCount sizes the token slice to avoid most growth.
func estimateTokenCount(lines []docast.TextRange) int {
	total := 1 // EndOfInput
	for _, line := range lines {
		total += line.Len()/4 + 2
	}
	return total
}
