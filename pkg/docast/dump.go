package docast

import (
	"fmt"
	"strings"
)

// Dump serializes the tree rooted at node into a deterministic, indented
// structural dump. Consumers compare dumps by value when structural identity
// matters (e.g. regression tests); the AST itself defines no equality.
func Dump(node *Node) string {
	var builder strings.Builder
	dumpNode(&builder, node, 0)
	return builder.String()
}

func dumpNode(builder *strings.Builder, node *Node, depth int) {
	if node == nil {
		return
	}

	builder.WriteString(strings.Repeat("  ", depth))
	builder.WriteString(node.Kind.String())

	if detail := nodeDetail(node); detail != "" {
		builder.WriteString(": ")
		builder.WriteString(detail)
	}
	builder.WriteString("\n")

	for _, child := range node.Children {
		dumpNode(builder, child, depth+1)
	}
}

// nodeDetail returns the per-kind summary appended after the kind name.
func nodeDetail(node *Node) string {
	switch node.Kind {
	case NodePlainText, NodeEscapedText, NodeErrorText:
		return fmt.Sprintf("%q", node.Text())
	case NodeBlock, NodeBlockTag, NodeInlineTag:
		if node.Tag != nil {
			return node.Tag.TagName
		}
	case NodeParamBlock:
		if node.Param != nil {
			return node.Param.ParameterName
		}
	case NodeLinkTag:
		if node.Link != nil {
			if node.Link.DisplayText != "" {
				return fmt.Sprintf("%s | %s", node.Link.Destination, node.Link.DisplayText)
			}
			return node.Link.Destination
		}
	case NodeCodeSpan:
		if node.Code != nil {
			return fmt.Sprintf("%q", node.Code.Code())
		}
	case NodeFencedCode:
		if node.Code != nil {
			return fmt.Sprintf("[%s] %q", node.Code.Info, node.Code.Code())
		}
	case NodeHTMLStartTag, NodeHTMLEndTag:
		if node.HTML != nil {
			return node.HTML.Name
		}
	case NodeHTMLAttribute:
		if node.HTML != nil {
			return fmt.Sprintf("%s=%q", node.HTML.Name, node.HTML.Value)
		}
	}
	return ""
}
