package parser

import (
	"strings"

	"github.com/yaklabco/gotsdoc/pkg/docast"
)

// ExtractLines slices a doc comment into its body lines as zero-copy ranges
// over the original buffer. When the text is framed as "/** ... */" the
// delimiters and each line's leading " * " decoration are excluded; bare
// text is split on newlines directly. Both LF and CRLF endings are handled.
func ExtractLines(text string) []docast.TextRange {
	buffer := docast.NewTextRange(text)

	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "/**") && strings.HasSuffix(trimmed, "*/") {
		return extractFramedLines(buffer)
	}
	return splitLines(buffer, buffer.Pos, buffer.End)
}

// extractFramedLines handles a "/** ... */" framed comment. The opening
// delimiter may be followed by content on the same line; each interior line
// drops leading whitespace, one "*", and one following space; the closing
// line drops the "*/" and any decoration before it.
func extractFramedLines(buffer docast.TextRange) []docast.TextRange {
	text := buffer.Buffer
	open := strings.Index(text, "/**")
	closer := strings.LastIndex(text, "*/")
	if open < 0 || closer < open {
		return splitLines(buffer, buffer.Pos, buffer.End)
	}

	bodyStart := open + len("/**")
	// "/***" and longer runs are still a valid opener; skip the extra stars.
	for bodyStart < closer && text[bodyStart] == '*' {
		bodyStart++
	}

	raw := splitLines(buffer, bodyStart, closer)
	lines := make([]docast.TextRange, 0, len(raw))
	for i, line := range raw {
		if i > 0 {
			line = stripLineDecoration(line)
		} else {
			line = trimLeadingSpace(line)
		}
		if i == len(raw)-1 {
			line = trimTrailingDecoration(line)
			// A closer on its own line contributes no body line.
			if i > 0 && line.IsEmpty() {
				continue
			}
		}
		lines = append(lines, line)
	}

	// Drop a leading empty first line ("/**\n" with content starting on the
	// next line), which is the common layout.
	if len(lines) > 0 && lines[0].IsEmpty() {
		lines = lines[1:]
	}
	return lines
}

// splitLines splits buffer[start:end] on newlines, excluding the line
// terminators themselves. A trailing "\r" is excluded as well.
func splitLines(buffer docast.TextRange, start, end int) []docast.TextRange {
	var lines []docast.TextRange
	lineStart := start
	for i := start; i < end; i++ {
		if buffer.Buffer[i] == '\n' {
			lineEnd := i
			if lineEnd > lineStart && buffer.Buffer[lineEnd-1] == '\r' {
				lineEnd--
			}
			lines = append(lines, buffer.Sub(lineStart, lineEnd))
			lineStart = i + 1
		}
	}
	// Input ending with a newline produces no trailing empty line.
	if lineStart < end {
		lineEnd := end
		if buffer.Buffer[lineEnd-1] == '\r' {
			lineEnd--
		}
		lines = append(lines, buffer.Sub(lineStart, lineEnd))
	}
	return lines
}

// stripLineDecoration removes leading whitespace, a single "*", and one
// space after it from an interior comment line.
func stripLineDecoration(line docast.TextRange) docast.TextRange {
	pos := line.Pos
	for pos < line.End && (line.Buffer[pos] == ' ' || line.Buffer[pos] == '\t') {
		pos++
	}
	if pos < line.End && line.Buffer[pos] == '*' {
		pos++
		if pos < line.End && line.Buffer[pos] == ' ' {
			pos++
		}
	}
	return line.Sub(pos, line.End)
}

// trimLeadingSpace removes leading spaces and tabs.
func trimLeadingSpace(line docast.TextRange) docast.TextRange {
	pos := line.Pos
	for pos < line.End && (line.Buffer[pos] == ' ' || line.Buffer[pos] == '\t') {
		pos++
	}
	return line.Sub(pos, line.End)
}

// trimTrailingDecoration removes trailing whitespace and a trailing "*" run
// left over before the "*/" closer.
func trimTrailingDecoration(line docast.TextRange) docast.TextRange {
	end := line.End
	for end > line.Pos && (line.Buffer[end-1] == ' ' || line.Buffer[end-1] == '\t') {
		end--
	}
	for end > line.Pos && line.Buffer[end-1] == '*' {
		end--
	}
	for end > line.Pos && (line.Buffer[end-1] == ' ' || line.Buffer[end-1] == '\t') {
		end--
	}
	return line.Sub(line.Pos, end)
}
