package docast

// TokenKind classifies the type of a token in the comment body.
type TokenKind uint8

// Token kinds cover every character of the comment body lines. Seven ASCII
// symbols get their own kind because the grammar treats each one specially;
// the rest of the CommonMark punctuation set is emitted as OtherPunctuation.
const (
	// TokEndOfInput marks the end of the token stream. Its range is empty.
	TokEndOfInput TokenKind = iota

	// TokNewline marks a line boundary. Its range is empty and anchored at
	// the line's end offset, because the actual newline character may be
	// discontinuous after comment-delimiter trimming.
	TokNewline

	// TokSpacing is a run of spaces and tabs.
	TokSpacing

	// TokAsciiWord is a run of ASCII letters and digits.
	TokAsciiWord

	// TokOtherPunctuation is a single ASCII punctuation character that is
	// not one of the distinguished symbols below.
	TokOtherPunctuation

	// TokOther is a run of characters that are neither ASCII words,
	// spacing, nor punctuation (e.g. non-ASCII text).
	TokOther

	TokBackslash   // '\'
	TokLessThan    // '<'
	TokGreaterThan // '>'
	TokEquals      // '='
	TokSingleQuote // '\''
	TokDoubleQuote // '"'
	TokSlash       // '/'
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokEndOfInput:
		return "EndOfInput"
	case TokNewline:
		return "Newline"
	case TokSpacing:
		return "Spacing"
	case TokAsciiWord:
		return "AsciiWord"
	case TokOtherPunctuation:
		return "OtherPunctuation"
	case TokOther:
		return "Other"
	case TokBackslash:
		return "Backslash"
	case TokLessThan:
		return "LessThan"
	case TokGreaterThan:
		return "GreaterThan"
	case TokEquals:
		return "Equals"
	case TokSingleQuote:
		return "SingleQuote"
	case TokDoubleQuote:
		return "DoubleQuote"
	case TokSlash:
		return "Slash"
	default:
		return "Unknown"
	}
}

// Token represents a classified span of a single comment body line.
// A token never spans a newline.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Range is the source text covered by this token. Synthetic tokens
	// (Newline, EndOfInput) carry an empty range marking a position.
	Range TextRange

	// Line is the body line this token was read from.
	Line TextRange
}

// Text returns the source text of this token.
func (t Token) Text() string {
	return t.Range.Text()
}

// IsSynthetic returns true for tokens that mark a position but contribute
// no characters (Newline, EndOfInput).
func (t Token) IsSynthetic() bool {
	return t.Kind == TokEndOfInput || t.Kind == TokNewline
}

// IsPunctuationKind returns true for kinds in the ASCII punctuation set,
// including the distinguished single-symbol kinds. These are the characters
// a backslash may escape.
func (k TokenKind) IsPunctuationKind() bool {
	switch k {
	case TokOtherPunctuation, TokBackslash, TokLessThan, TokGreaterThan,
		TokEquals, TokSingleQuote, TokDoubleQuote, TokSlash:
		return true
	default:
		return false
	}
}

// ValidateTokens checks that the non-synthetic tokens of a token stream
// exactly reconstruct each body line: contiguous, non-overlapping, no
// characters gained or lost. Synthetic tokens must carry empty ranges.
// Returns true if the stream is valid.
func ValidateTokens(tokens []Token, lines []TextRange) bool {
	if len(tokens) == 0 {
		return false // a valid stream always ends with EndOfInput
	}
	if tokens[len(tokens)-1].Kind != TokEndOfInput {
		return false
	}

	lineIdx := 0
	cursor := -1 // next expected Pos within the current line
	for _, tok := range tokens {
		if tok.IsSynthetic() {
			if !tok.Range.IsEmpty() {
				return false
			}
			if tok.Kind == TokNewline {
				if lineIdx >= len(lines) || cursor >= 0 && cursor != lines[lineIdx].End {
					return false
				}
				lineIdx++
				cursor = -1
			}
			continue
		}
		if lineIdx >= len(lines) {
			return false
		}
		if cursor < 0 {
			cursor = lines[lineIdx].Pos
		}
		if tok.Range.Pos != cursor {
			return false
		}
		cursor = tok.Range.End
	}
	return lineIdx == len(lines)
}
