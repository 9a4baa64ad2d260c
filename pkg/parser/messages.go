// Package parser implements the doc-comment parsing pipeline: line slicing,
// tokenization, and a recursive-descent parser that builds a docast tree
// while tolerating malformed input. Parsing never fails: every anomaly is
// recorded as a ParserMessage and parsing continues with a best-effort
// partial node.
package parser

import "github.com/yaklabco/gotsdoc/pkg/docast"

// MessageID is a stable, consumer-matchable identifier for one category of
// diagnostic, so tooling can filter or suppress by category.
type MessageID string

// Parse-time message identifiers.
const (
	MsgUndefinedTag              MessageID = "tsdoc-undefined-tag"
	MsgUnsupportedTag            MessageID = "tsdoc-unsupported-tag"
	MsgDuplicateTag              MessageID = "tsdoc-duplicate-tag"
	MsgAtSignWithoutTagName      MessageID = "tsdoc-at-sign-without-tag-name"
	MsgInlineTagMissingName      MessageID = "tsdoc-inline-tag-missing-name"
	MsgInlineTagMissingBraces    MessageID = "tsdoc-inline-tag-missing-braces"
	MsgInlineTagMissingRightBrace MessageID = "tsdoc-inline-tag-missing-right-brace"
	MsgLinkTagEmpty              MessageID = "tsdoc-link-tag-empty"
	MsgCodeSpanMissingDelimiter  MessageID = "tsdoc-code-span-missing-delimiter"
	MsgCodeFenceMissingDelimiter MessageID = "tsdoc-code-fence-missing-delimiter"
	MsgUnnecessaryBackslash      MessageID = "tsdoc-unnecessary-backslash"
	MsgHTMLTagMissingName        MessageID = "tsdoc-html-tag-missing-name"
	MsgHTMLTagMissingEquals      MessageID = "tsdoc-html-tag-missing-equals"
	MsgHTMLTagMissingString      MessageID = "tsdoc-html-tag-missing-string"
	MsgHTMLTagMissingGreaterThan MessageID = "tsdoc-html-tag-missing-greater-than"
	MsgParamTagMissingName       MessageID = "tsdoc-param-tag-missing-name"
	MsgMissingDeprecationMessage MessageID = "tsdoc-missing-deprecation-message"
)

// Config-file resolver message identifiers.
const (
	MsgConfigFileNotFound      MessageID = "tsdoc-config-file-not-found"
	MsgConfigInvalidJSON       MessageID = "tsdoc-config-invalid-json"
	MsgConfigCyclicExtends     MessageID = "tsdoc-config-cyclic-extends"
	MsgConfigUnresolvedExtends MessageID = "tsdoc-config-unresolved-extends"
	MsgConfigInvalidTagName    MessageID = "tsdoc-config-invalid-tag-name"
)

// ParserMessage represents one diagnostic. When Tokens is non-empty it
// pinpoints the exact tokens implicated (for precise underlining);
// otherwise Range is authoritative.
type ParserMessage struct {
	// ID is the stable category identifier.
	ID MessageID

	// Text is the unformatted human-readable explanation.
	Text string

	// Range locates the diagnostic in the source buffer.
	Range docast.TextRange

	// Tokens, when present, are the exact tokens implicated.
	Tokens []docast.Token

	// Node is the AST node associated with this message, if any.
	Node *docast.Node
}

// MessageLog is the ordered diagnostic log of one parse or one config-file
// resolution. An empty log means fully well-formed input.
type MessageLog struct {
	messages []*ParserMessage
}

// NewMessageLog creates an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Messages returns the logged messages in the order they were recorded.
func (l *MessageLog) Messages() []*ParserMessage {
	return l.messages
}

// Len returns the number of logged messages.
func (l *MessageLog) Len() int {
	return len(l.messages)
}

// Add appends a fully-formed message.
func (l *MessageLog) Add(msg *ParserMessage) {
	l.messages = append(l.messages, msg)
}

// AddForRange records a diagnostic located by a text range.
func (l *MessageLog) AddForRange(id MessageID, text string, r docast.TextRange) {
	l.Add(&ParserMessage{ID: id, Text: text, Range: r})
}

// AddForTokens records a diagnostic pinpointing a token sequence. The
// message range spans from the first to the last token.
func (l *MessageLog) AddForTokens(id MessageID, text string, tokens []docast.Token) {
	msg := &ParserMessage{ID: id, Text: text, Tokens: tokens}
	if len(tokens) > 0 {
		first := tokens[0].Range
		last := tokens[len(tokens)-1].Range
		msg.Range = docast.TextRange{Buffer: first.Buffer, Pos: first.Pos, End: last.End}
	}
	l.Add(msg)
}

// AddForNode records a diagnostic attached to an AST node, located by the
// node's excerpt.
func (l *MessageLog) AddForNode(id MessageID, text string, node *docast.Node) {
	l.Add(&ParserMessage{ID: id, Text: text, Range: node.Excerpt, Node: node})
}
