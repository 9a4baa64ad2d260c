package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gotsdoc/pkg/tags"
)

// Table formatting constants.
const (
	tagColumnWidth      = 24
	syntaxColumnWidth   = 10
	multipleColumnWidth = 9
	tierColumnWidth     = 14
	lightSeparator      = "-"
)

// FormatTagTable renders the tag vocabulary as an aligned table: name,
// syntax kind, multiplicity, standardization tier, and synonyms.
func (s *Styles) FormatTagTable(cfg *tags.Configuration) string {
	var builder strings.Builder

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
		tagColumnWidth, "TAG",
		syntaxColumnWidth, "SYNTAX",
		multipleColumnWidth, "MULTIPLE",
		tierColumnWidth, "STANDARDIZATION",
		"SYNONYMS")
	builder.WriteString(s.TableHeader.Render(header) + "\n")
	builder.WriteString(s.TableBorder.Render(strings.Repeat(lightSeparator, len(header))) + "\n")

	for _, def := range cfg.Definitions() {
		multiple := ""
		if def.AllowMultiple {
			multiple = "yes"
		}
		synonyms := strings.Join(cfg.Synonyms(def.TagName), ", ")

		builder.WriteString(fmt.Sprintf("%-*s %-*s %-*s %-*s %s\n",
			tagColumnWidth, def.TagName,
			syntaxColumnWidth, def.Syntax.String(),
			multipleColumnWidth, multiple,
			tierColumnWidth, def.Standardization.String(),
			s.Dim.Render(synonyms)))
	}

	return builder.String()
}
