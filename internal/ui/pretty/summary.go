package pretty

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// Stats holds the counters of one parse run.
type Stats struct {
	FilesProcessed  int
	FilesWithIssues int
	Comments        int
	Diagnostics     int
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "4 issues in 2 files (17 comments parsed)".
func (s *Styles) FormatSummaryOneLine(stats Stats) string {
	commentWord := "comments"
	if stats.Comments == 1 {
		commentWord = "comment"
	}

	if stats.Diagnostics == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s in %d %s)",
				stats.Comments, commentWord, stats.FilesProcessed, fileWord(stats.FilesProcessed))) +
			"\n"
	}

	issueWord := "issues"
	if stats.Diagnostics == 1 {
		issueWord = "issue"
	}

	return fmt.Sprintf("%d %s in %d %s %s\n",
		stats.Diagnostics, issueWord,
		stats.FilesWithIssues, fileWord(stats.FilesWithIssues),
		s.Dim.Render(fmt.Sprintf("(%d %s parsed)", stats.Comments, commentWord)))
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files parsed:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	builder.WriteString("  Comments parsed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.Comments)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.Diagnostics)) + "\n")

	builder.WriteString("\n")
	if stats.Diagnostics > 0 {
		builder.WriteString(s.Warning.Render("Parse completed with warnings"))
	} else {
		builder.WriteString(s.Success.Render("Parse passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

func fileWord(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
