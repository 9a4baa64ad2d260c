package parser

import (
	"strings"

	"github.com/yaklabco/gotsdoc/pkg/docast"
)

// DocComment is one "/** ... */" comment found in a source file, located by
// its byte range in the file.
type DocComment struct {
	// Range spans the full comment including both delimiters.
	Range docast.TextRange

	// Line and Column are the 1-based position of the opening "/**".
	Line   int
	Column int
}

// Text returns the full comment text including delimiters.
func (d DocComment) Text() string {
	return d.Range.Text()
}

// FindDocComments scans source text for doc comments: block comments that
// open with "/**" and close with "*/". Comments inside string or template
// literals are not excluded; callers wanting language-accurate extraction
// should pre-filter with a real lexer.
func FindDocComments(source string) []DocComment {
	var comments []DocComment
	buffer := docast.NewTextRange(source)

	offset := 0
	for {
		rel := strings.Index(source[offset:], "/**")
		if rel < 0 {
			return comments
		}
		start := offset + rel

		// "/**/" is an empty plain comment, not a doc comment.
		if strings.HasPrefix(source[start:], "/**/") {
			offset = start + len("/**/")
			continue
		}

		rel = strings.Index(source[start+len("/**"):], "*/")
		if rel < 0 {
			return comments
		}
		end := start + len("/**") + rel + len("*/")

		line, col := buffer.Location(start)
		comments = append(comments, DocComment{
			Range:  buffer.Sub(start, end),
			Line:   line,
			Column: col,
		})
		offset = end
	}
}
