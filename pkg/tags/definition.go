// Package tags defines the tag vocabulary consulted by the doc-comment
// parser: tag definitions, the synonym table, and the configuration registry
// that maps tag names to their meaning.
package tags

import (
	"fmt"
	"strings"
)

// SyntaxKind determines how a tag is written and parsed.
type SyntaxKind uint8

const (
	// SyntaxBlockTag introduces a new top-level section of a comment,
	// e.g. "@remarks".
	SyntaxBlockTag SyntaxKind = iota

	// SyntaxInlineTag is embedded within text content and delimited by
	// braces, e.g. "{@link}".
	SyntaxInlineTag

	// SyntaxModifierTag is a bare tag asserting a boolean property of the
	// documented item, e.g. "@internal".
	SyntaxModifierTag
)

// String returns a human-readable name for the syntax kind.
func (k SyntaxKind) String() string {
	switch k {
	case SyntaxBlockTag:
		return "block"
	case SyntaxInlineTag:
		return "inline"
	case SyntaxModifierTag:
		return "modifier"
	default:
		return "unknown"
	}
}

// ParseSyntaxKind converts a config-file syntax kind string to a SyntaxKind.
func ParseSyntaxKind(s string) (SyntaxKind, bool) {
	switch strings.ToLower(s) {
	case "block":
		return SyntaxBlockTag, true
	case "inline":
		return SyntaxInlineTag, true
	case "modifier":
		return SyntaxModifierTag, true
	default:
		return 0, false
	}
}

// Standardization is the governance tier of a tag definition. It is
// independent of parsing behavior.
type Standardization uint8

const (
	// StandardizationNone marks a user-defined tag.
	StandardizationNone Standardization = iota

	// StandardizationCore tags are required for the vocabulary to be usable.
	StandardizationCore

	// StandardizationExtended tags are optional but have a reserved meaning.
	StandardizationExtended

	// StandardizationDiscretionary tags have implementation-defined meaning.
	StandardizationDiscretionary
)

// String returns a human-readable name for the standardization tier.
func (s Standardization) String() string {
	switch s {
	case StandardizationCore:
		return "core"
	case StandardizationExtended:
		return "extended"
	case StandardizationDiscretionary:
		return "discretionary"
	case StandardizationNone:
		return "none"
	default:
		return "unknown"
	}
}

// TagDefinition describes one tag in the vocabulary. Identity is by name,
// case-insensitively.
type TagDefinition struct {
	// TagName is the tag spelling including the leading "@", e.g. "@param".
	TagName string

	// Syntax determines how the tag is written and parsed.
	Syntax SyntaxKind

	// AllowMultiple permits more than one occurrence per comment.
	AllowMultiple bool

	// Standardization is the governance tier of this definition.
	Standardization Standardization
}

// Key returns the case-insensitive lookup key for this definition.
func (d *TagDefinition) Key() string {
	return TagNameKey(d.TagName)
}

// TagNameKey normalizes a tag name to its case-insensitive lookup key.
func TagNameKey(tagName string) string {
	return strings.ToUpper(tagName)
}

// ValidateTagName checks that a tag name is well-formed: a leading "@"
// followed by an ASCII letter and then ASCII letters or digits.
func ValidateTagName(tagName string) error {
	if len(tagName) < 2 || tagName[0] != '@' {
		return fmt.Errorf("tag name %q must start with %q followed by a name", tagName, "@")
	}
	for i := 1; i < len(tagName); i++ {
		c := tagName[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if i == 1 && !isLetter {
			return fmt.Errorf("tag name %q must begin with an ASCII letter", tagName)
		}
		if !isLetter && !isDigit {
			return fmt.Errorf("tag name %q contains an invalid character %q", tagName, string(c))
		}
	}
	return nil
}
