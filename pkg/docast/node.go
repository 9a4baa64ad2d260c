package docast

import "github.com/yaklabco/gotsdoc/pkg/tags"

// NodeKind classifies the type of an AST node. The set is closed: consumers
// switch on the discriminator rather than performing type tests.
type NodeKind uint8

// Node kinds for container and leaf documentation elements.
const (
	// NodeComment is the root of a parsed doc comment.
	NodeComment NodeKind = iota

	// NodeSection is an ordered container of inline content.
	NodeSection

	// Leaf inline content.
	NodePlainText
	NodeSoftBreak
	NodeEscapedText
	NodeCodeSpan
	NodeFencedCode

	// Tag constructs.
	NodeBlock
	NodeParamBlock
	NodeBlockTag
	NodeInlineTag
	NodeLinkTag
	NodeInheritDocTag

	// HTML constructs.
	NodeHTMLStartTag
	NodeHTMLEndTag
	NodeHTMLAttribute

	// NodeErrorText captures an unparseable span without discarding it.
	NodeErrorText
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeComment:
		return "Comment"
	case NodeSection:
		return "Section"
	case NodePlainText:
		return "PlainText"
	case NodeSoftBreak:
		return "SoftBreak"
	case NodeEscapedText:
		return "EscapedText"
	case NodeCodeSpan:
		return "CodeSpan"
	case NodeFencedCode:
		return "FencedCode"
	case NodeBlock:
		return "Block"
	case NodeParamBlock:
		return "ParamBlock"
	case NodeBlockTag:
		return "BlockTag"
	case NodeInlineTag:
		return "InlineTag"
	case NodeLinkTag:
		return "LinkTag"
	case NodeInheritDocTag:
		return "InheritDocTag"
	case NodeHTMLStartTag:
		return "HtmlStartTag"
	case NodeHTMLEndTag:
		return "HtmlEndTag"
	case NodeHTMLAttribute:
		return "HtmlAttribute"
	case NodeErrorText:
		return "ErrorText"
	default:
		return "Unknown"
	}
}

// Node represents a single node in the documentation AST. Container nodes
// carry ordered children (insertion order = document order); leaf nodes
// carry an excerpt: the exact source range they were parsed from. The tree
// is read-only after parsing and holds no parent back-references, so it is
// acyclic by construction.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Excerpt is the raw source consumed by this node. Always a sub-range
	// of the original buffer, so markers can be computed purely from
	// offsets. Empty for pure containers.
	Excerpt TextRange

	// Children holds the ordered child nodes. Appended during parsing,
	// never reordered.
	Children []*Node

	// Per-kind attributes; at most one is set, matching Kind.
	Comment *CommentAttrs
	Tag     *TagAttrs
	Param   *ParamAttrs
	Link    *LinkAttrs
	HTML    *HTMLAttrs
	Code    *CodeAttrs
	Error   *ErrorAttrs
}

// NewNode creates a new node of the specified kind with no children and an
// empty excerpt.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// AppendChild appends a child in document order.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// Text returns the source text covered by this node's excerpt.
func (n *Node) Text() string {
	return n.Excerpt.Text()
}

// IsContainer returns true for node kinds that carry children.
func (n *Node) IsContainer() bool {
	switch n.Kind {
	case NodeComment, NodeSection, NodeBlock, NodeParamBlock,
		NodeHTMLStartTag:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// CommentAttrs holds the typed views a Comment root exposes over its
// children. Every node referenced here also appears in Children in
// document order; these fields are classification, not ownership islands.
type CommentAttrs struct {
	// Summary is the leading section before the first block tag.
	Summary *Node

	// Remarks is the "@remarks" block, if present.
	Remarks *Node

	// Deprecated is the "@deprecated" block, if present.
	Deprecated *Node

	// Returns is the "@returns" block, if present.
	Returns *Node

	// Params and TypeParams hold "@param" / "@typeParam" blocks in
	// document order.
	Params     []*Node
	TypeParams []*Node

	// SeeBlocks holds "@see" blocks in document order.
	SeeBlocks []*Node

	// CustomBlocks holds blocks whose tag has no dedicated field,
	// including undefined tags.
	CustomBlocks []*Node

	// ModifierNodes holds the BlockTag nodes of encountered modifier tags.
	ModifierNodes []*Node

	// ModifierTags is the synonym-transparent membership set of modifier
	// tags.
	ModifierTags *tags.ModifierTagSet
}

// TagAttrs describes the tag that introduced a Block, BlockTag, or inline
// tag node.
type TagAttrs struct {
	// TagName is the spelling as written, including "@".
	TagName string

	// NameRange covers the tag name in the source.
	NameRange TextRange

	// Definition is the resolved tag definition, nil for undefined tags.
	Definition *tags.TagDefinition
}

// ParamAttrs holds the parameter binding of a ParamBlock.
type ParamAttrs struct {
	// ParameterName is the documented parameter's name; empty when the
	// name was missing or unparseable.
	ParameterName string

	// NameRange covers the parameter name in the source.
	NameRange TextRange
}

// LinkAttrs holds the pieces of a "{@link destination | display}" tag.
type LinkAttrs struct {
	// Destination is the trimmed link target (URL or code reference).
	Destination string

	// DestinationRange covers the destination in the source.
	DestinationRange TextRange

	// DisplayText is the trimmed optional pipe-delimited display text.
	DisplayText string

	// DisplayTextRange covers the display text in the source.
	DisplayTextRange TextRange
}

// HTMLAttrs holds the name of an HTML tag node, or the name/value pair of an
// HtmlAttribute node.
type HTMLAttrs struct {
	// Name is the element or attribute name.
	Name string

	// NameRange covers the name in the source.
	NameRange TextRange

	// Value is the unquoted attribute value (HtmlAttribute only).
	Value string

	// SelfClosing is true for "<name ... />" start tags.
	SelfClosing bool
}

// CodeAttrs holds the content of CodeSpan and FencedCode nodes.
type CodeAttrs struct {
	// Info is the trimmed info string of a fenced block (e.g. a language
	// identifier). Empty for code spans.
	Info string

	// InfoRange covers the info string in the source.
	InfoRange TextRange

	// Language is the resolved language of a fenced block: the info string
	// normalized through the language alias table, or inferred from the
	// code content when the info string is empty.
	Language string

	// CodeRanges holds the code content line by line; a code span has a
	// single range. Each range is a sub-range of the original buffer.
	CodeRanges []TextRange
}

// Code returns the code content with lines joined by "\n".
func (a *CodeAttrs) Code() string {
	switch len(a.CodeRanges) {
	case 0:
		return ""
	case 1:
		return a.CodeRanges[0].Text()
	}
	out := make([]byte, 0, 64)
	for i, r := range a.CodeRanges {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, r.Text()...)
	}
	return string(out)
}

// ErrorAttrs describes why a span degraded to ErrorText.
type ErrorAttrs struct {
	// MessageID is the stable identifier of the diagnostic that was logged
	// alongside this node.
	MessageID string

	// Reason is the human-readable explanation.
	Reason string
}
