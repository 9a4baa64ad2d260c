// Package langdetect resolves the language of fenced code blocks inside doc
// comments. The fence info string is authoritative when present; otherwise
// the language is inferred from the code content with go-enry.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback when nothing can be determined.
const langText = "text"

// classifierCandidates narrows the enry classifier to languages that
// actually appear in documentation examples; an open candidate set makes the
// bayesian classifier guess wildly on short snippets.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"TypeScript", "JavaScript", "JSON", "Go", "Python", "Shell",
	"HTML", "CSS", "YAML", "SQL", "Rust", "Java", "C", "C++",
}

// ResolveFence determines the language of a fenced code block. A non-empty
// info string is resolved through enry's alias table (so "ts" and
// "typescript" agree); an unknown alias is kept as written, lowercased. An
// empty info string falls back to content detection.
func ResolveFence(info string, code []byte) string {
	alias := fenceAlias(info)
	if alias != "" {
		if lang, ok := enry.GetLanguageByAlias(alias); ok {
			return normalize(lang)
		}
		return strings.ToLower(alias)
	}
	return Detect(code)
}

// fenceAlias extracts the language word from an info string, ignoring
// trailing fence attributes such as "ts {highlight: 2}".
func fenceAlias(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Detect infers a language from code content alone. Returns "text" when
// detection fails or confidence is low.
func Detect(content []byte) string {
	if len(strings.TrimSpace(string(content))) == 0 {
		return langText
	}

	// A shebang names its interpreter outright.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// normalize maps enry's display names to the lowercase identifiers used in
// fence info strings.
func normalize(lang string) string {
	switch lang {
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	case "Shell":
		return "bash"
	default:
		return strings.ToLower(lang)
	}
}
