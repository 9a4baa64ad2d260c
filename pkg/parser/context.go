package parser

import (
	"github.com/yaklabco/gotsdoc/pkg/docast"
	"github.com/yaklabco/gotsdoc/pkg/tags"
)

// ParserContext is the complete result of one parse: the comment AST, the
// sliced body lines, the token stream, and the ordered diagnostic log. It is
// immutable once returned; independent parses never share state.
type ParserContext struct {
	// SourceText is the original input buffer all ranges point into.
	SourceText string

	// Lines are the comment body lines after delimiter stripping.
	Lines []docast.TextRange

	// Tokens is the flat token sequence the parser consumed.
	Tokens []docast.Token

	// Comment is the root of the documentation AST. It is never nil, even
	// for empty or wholly malformed input.
	Comment *docast.Node

	// Log is the ordered diagnostic log. Empty log means a fully
	// well-formed comment.
	Log *MessageLog

	// Configuration is the tag vocabulary this parse consulted.
	Configuration *tags.Configuration
}
