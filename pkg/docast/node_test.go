package docast_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/gotsdoc/pkg/docast"
)

func TestNewNode(t *testing.T) {
	t.Parallel()

	node := docast.NewNode(docast.NodePlainText)

	if node.Kind != docast.NodePlainText {
		t.Errorf("Kind = %v", node.Kind)
	}
	if node.HasChildren() {
		t.Error("new node must have no children")
	}
	if !node.Excerpt.IsEmpty() {
		t.Error("new node must have an empty excerpt")
	}
}

func TestAppendChildOrder(t *testing.T) {
	t.Parallel()

	parent := docast.NewNode(docast.NodeSection)
	a := docast.NewNode(docast.NodePlainText)
	b := docast.NewNode(docast.NodeSoftBreak)
	parent.AppendChild(a)
	parent.AppendChild(b)

	if len(parent.Children) != 2 {
		t.Fatalf("len(Children) = %d", len(parent.Children))
	}
	if parent.Children[0] != a || parent.Children[1] != b {
		t.Error("children must keep insertion order")
	}
}

func TestNodeText(t *testing.T) {
	t.Parallel()

	buffer := docast.NewTextRange("the quick brown fox")
	node := docast.NewNode(docast.NodePlainText)
	node.Excerpt = buffer.Sub(4, 9)

	if node.Text() != "quick" {
		t.Errorf("Text() = %q", node.Text())
	}
}

func TestIsContainer(t *testing.T) {
	t.Parallel()

	containers := []docast.NodeKind{
		docast.NodeComment, docast.NodeSection, docast.NodeBlock,
		docast.NodeParamBlock,
	}
	for _, kind := range containers {
		if !docast.NewNode(kind).IsContainer() {
			t.Errorf("%v must be a container", kind)
		}
	}

	leaves := []docast.NodeKind{
		docast.NodePlainText, docast.NodeSoftBreak, docast.NodeEscapedText,
		docast.NodeCodeSpan, docast.NodeFencedCode, docast.NodeErrorText,
	}
	for _, kind := range leaves {
		if docast.NewNode(kind).IsContainer() {
			t.Errorf("%v must not be a container", kind)
		}
	}
}

func TestCodeAttrsJoinsRanges(t *testing.T) {
	t.Parallel()

	buffer := docast.NewTextRange("let x = 1;\nlet y = 2;")
	attrs := &docast.CodeAttrs{
		CodeRanges: []docast.TextRange{
			buffer.Sub(0, 10),
			buffer.Sub(11, 21),
		},
	}

	want := "let x = 1;\nlet y = 2;"
	if got := attrs.Code(); got != want {
		t.Errorf("Code() = %q, want %q", got, want)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	buffer := docast.NewTextRange("hello @remarks world")

	comment := docast.NewNode(docast.NodeComment)
	section := docast.NewNode(docast.NodeSection)
	text := docast.NewNode(docast.NodePlainText)
	text.Excerpt = buffer.Sub(0, 5)
	section.AppendChild(text)
	comment.AppendChild(section)

	block := docast.NewNode(docast.NodeBlock)
	block.Tag = &docast.TagAttrs{TagName: "@remarks"}
	comment.AppendChild(block)

	dump := docast.Dump(comment)

	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	want := []string{
		"Comment",
		"  Section",
		`    PlainText: "hello"`,
		"  Block: @remarks",
	}
	if len(lines) != len(want) {
		t.Fatalf("dump has %d lines, want %d:\n%s", len(lines), len(want), dump)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("dump line %d = %q, want %q", i, lines[i], line)
		}
	}

	// Dumping is deterministic.
	if docast.Dump(comment) != dump {
		t.Error("Dump must be deterministic")
	}
	if docast.Dump(nil) != "" {
		t.Error("Dump(nil) must be empty")
	}
}
