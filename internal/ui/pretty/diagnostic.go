package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gotsdoc/pkg/parser"
)

// FormatMessage formats a single parser diagnostic for terminal output,
// using the diagnostic's own buffer position. The path names the file the
// comment came from.
func (s *Styles) FormatMessage(path string, msg *parser.ParserMessage, showContext bool) string {
	line, col := msg.Range.StartLocation()
	return s.FormatMessageAt(path, line, col, msg, showContext)
}

// FormatMessageAt is FormatMessage with an explicit position, for callers
// that have already mapped the diagnostic into whole-file coordinates.
func (s *Styles) FormatMessageAt(path string, line, col int, msg *parser.ParserMessage, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		line,
		col,
	)

	idDisplay := s.MessageID.Render("(" + string(msg.ID) + ")")

	// Main line: location  warning  message  (message-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Warning.Render("warning"),
		s.Message.Render(msg.Text),
		idDisplay,
	))

	if showContext {
		if sourceLine, caretCol := sourceContext(msg); sourceLine != "" {
			builder.WriteString(s.FormatSourceContext(sourceLine, caretCol))
		}
	}

	return builder.String()
}

// sourceContext extracts the source line containing the diagnostic and the
// caret column within it.
func sourceContext(msg *parser.ParserMessage) (string, int) {
	if len(msg.Tokens) > 0 && !msg.Tokens[0].Line.IsEmpty() {
		tok := msg.Tokens[0]
		return tok.Line.Text(), tok.Range.Pos - tok.Line.Pos + 1
	}

	r := msg.Range
	if r.Buffer == "" {
		return "", 0
	}
	start := strings.LastIndexByte(r.Buffer[:r.Pos], '\n') + 1
	end := strings.IndexByte(r.Buffer[r.Pos:], '\n')
	if end < 0 {
		end = len(r.Buffer)
	} else {
		end += r.Pos
	}
	return r.Buffer[start:end], r.Pos - start + 1
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
