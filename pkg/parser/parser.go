package parser

import (
	"strings"

	"github.com/yaklabco/gotsdoc/pkg/docast"
	"github.com/yaklabco/gotsdoc/pkg/langdetect"
	"github.com/yaklabco/gotsdoc/pkg/tags"
)

// Parser converts doc-comment text into a documentation AST using a tag
// configuration to classify tag tokens. A Parser is stateless between calls
// and safe for concurrent use.
type Parser struct {
	cfg *tags.Configuration
}

// New creates a parser using the given configuration. A nil configuration
// selects the frozen default (standard tags only, no custom synonyms).
func New(cfg *tags.Configuration) *Parser {
	if cfg == nil {
		cfg = tags.Default()
	}
	return &Parser{cfg: cfg}
}

// Parse parses a doc comment with the default configuration.
func Parse(text string) *ParserContext {
	return New(nil).Parse(text)
}

// Parse slices the text into body lines, tokenizes them, and builds the
// documentation AST. It never returns an error and never panics: every
// anomaly in the input is recorded in the context's log instead.
func (p *Parser) Parse(text string) *ParserContext {
	return p.ParseLines(text, ExtractLines(text))
}

// ParseLines parses pre-sliced body lines. The lines must be ranges over
// source.
func (p *Parser) ParseLines(source string, lines []docast.TextRange) *ParserContext {
	tokens := ReadTokens(lines)

	cp := &commentParser{
		cfg:        p.cfg,
		buffer:     docast.NewTextRange(source),
		tokens:     tokens,
		log:        NewMessageLog(),
		tagCounts:  make(map[string]int),
		plainStart: -1,
	}
	comment := cp.parseComment()

	return &ParserContext{
		SourceText:    source,
		Lines:         lines,
		Tokens:        tokens,
		Comment:       comment,
		Log:           cp.log,
		Configuration: p.cfg,
	}
}

// commentParser is the recursive-descent state for one comment.
type commentParser struct {
	cfg    *tags.Configuration
	buffer docast.TextRange
	tokens []docast.Token
	pos    int
	log    *MessageLog

	comment *docast.Node
	attrs   *docast.CommentAttrs
	section *docast.Node // current content sink

	tagCounts  map[string]int // canonical key -> occurrences seen
	plainStart int            // token index of the pending plain-text run, -1 if none
}

// tok returns the token at offset i from the cursor, clamped to EndOfInput.
func (cp *commentParser) tok(i int) docast.Token {
	idx := cp.pos + i
	if idx >= len(cp.tokens) {
		idx = len(cp.tokens) - 1
	}
	return cp.tokens[idx]
}

func (cp *commentParser) advance(n int) {
	cp.pos += n
	if cp.pos > len(cp.tokens)-1 {
		cp.pos = len(cp.tokens) - 1
	}
}

// parseComment is the top-level production: a summary section of inline
// content interleaved with block tags, param blocks, and modifier tags in
// any order.
func (cp *commentParser) parseComment() *docast.Node {
	cp.comment = docast.NewNode(docast.NodeComment)
	cp.attrs = &docast.CommentAttrs{
		ModifierTags: tags.NewModifierTagSet(cp.cfg),
	}
	cp.comment.Comment = cp.attrs

	summary := docast.NewNode(docast.NodeSection)
	cp.attrs.Summary = summary
	cp.comment.AppendChild(summary)
	cp.section = summary

	for {
		tok := cp.tok(0)
		switch tok.Kind {
		case docast.TokEndOfInput:
			cp.flushPlainText()
			cp.finish()
			return cp.comment

		case docast.TokNewline:
			cp.flushPlainText()
			softBreak := docast.NewNode(docast.NodeSoftBreak)
			softBreak.Excerpt = tok.Range
			cp.section.AppendChild(softBreak)
			cp.advance(1)

		case docast.TokBackslash:
			cp.flushPlainText()
			cp.parseEscape()

		case docast.TokLessThan:
			cp.flushPlainText()
			cp.parseHTMLTag()

		case docast.TokOtherPunctuation:
			switch tok.Text() {
			case "@":
				cp.parseAtSign()
			case "{":
				cp.flushPlainText()
				cp.parseInlineTag()
			case "`":
				cp.flushPlainText()
				cp.parseBacktick()
			default:
				cp.appendPlain()
			}

		default:
			cp.appendPlain()
		}
	}
}

// finish derives the comment-level views that depend on the whole body.
func (cp *commentParser) finish() {
	if block := cp.attrs.Deprecated; block != nil && !sectionHasContent(blockContent(block)) {
		cp.log.AddForNode(MsgMissingDeprecationMessage,
			"the @deprecated tag requires a message describing the replacement", block)
	}
}

// appendPlain adds the current token to the pending plain-text run.
func (cp *commentParser) appendPlain() {
	if cp.plainStart < 0 {
		cp.plainStart = cp.pos
	}
	cp.advance(1)
}

// flushPlainText materializes the pending plain-text run, if any, as a
// single PlainText leaf. Runs never span a newline, so the excerpt is a
// contiguous sub-range of the buffer.
func (cp *commentParser) flushPlainText() {
	if cp.plainStart < 0 || cp.pos <= cp.plainStart {
		cp.plainStart = -1
		return
	}

	node := docast.NewNode(docast.NodePlainText)
	node.Excerpt = cp.excerpt(cp.plainStart, cp.pos)
	cp.section.AppendChild(node)
	cp.plainStart = -1
}

// excerpt returns the buffer range spanned by tokens[start:end).
func (cp *commentParser) excerpt(start, end int) docast.TextRange {
	if end <= start {
		return cp.buffer.Sub(cp.tokens[start].Range.Pos, cp.tokens[start].Range.Pos)
	}
	return cp.buffer.Sub(cp.tokens[start].Range.Pos, cp.tokens[end-1].Range.End)
}

// errorText degrades tokens[start:end) to an ErrorText leaf and logs the
// diagnostic. The excerpt still spans the offending tokens, preserving
// position fidelity for tooling.
func (cp *commentParser) errorText(start, end int, id MessageID, text string) *docast.Node {
	node := docast.NewNode(docast.NodeErrorText)
	node.Excerpt = cp.excerpt(start, end)
	node.Error = &docast.ErrorAttrs{MessageID: string(id), Reason: text}
	cp.section.AppendChild(node)
	cp.log.AddForTokens(id, text, cp.tokens[start:end])
	return node
}

// parseEscape handles a backslash: followed by one punctuation-class token
// it consumes both into a single literal-character span; a dangling
// backslash is retained literally with a diagnostic.
func (cp *commentParser) parseEscape() {
	backslash := cp.tok(0)
	next := cp.tok(1)

	if !next.IsSynthetic() && next.Kind.IsPunctuationKind() &&
		next.Range.Pos == backslash.Range.End {
		node := docast.NewNode(docast.NodeEscapedText)
		node.Excerpt = cp.excerpt(cp.pos, cp.pos+2)
		cp.section.AppendChild(node)
		cp.advance(2)
		return
	}

	cp.log.AddForTokens(MsgUnnecessaryBackslash,
		"a backslash must precede a punctuation character", cp.tokens[cp.pos:cp.pos+1])
	node := docast.NewNode(docast.NodePlainText)
	node.Excerpt = backslash.Range
	cp.section.AppendChild(node)
	cp.advance(1)
}

// parseAtSign handles a bare "@": when immediately followed by an ASCII word
// and preceded by spacing or a line boundary it begins a tag; otherwise the
// character is ordinary text (e.g. an email address).
func (cp *commentParser) parseAtSign() {
	at := cp.tok(0)
	word := cp.tok(1)

	precededByText := cp.pos > 0 && !cp.tokens[cp.pos-1].IsSynthetic() &&
		cp.tokens[cp.pos-1].Kind != docast.TokSpacing
	if precededByText {
		cp.appendPlain()
		return
	}

	if word.Kind != docast.TokAsciiWord || word.Range.Pos != at.Range.End {
		cp.flushPlainText()
		cp.log.AddForTokens(MsgAtSignWithoutTagName,
			`expecting a tag name after "@"`, cp.tokens[cp.pos:cp.pos+1])
		node := docast.NewNode(docast.NodePlainText)
		node.Excerpt = at.Range
		cp.section.AppendChild(node)
		cp.advance(1)
		return
	}

	cp.flushPlainText()
	cp.parseTag()
}

// parseTag consumes "@name" and dispatches on the resolved definition:
// modifier tags join the modifier set in place, block tags begin a new
// block, inline-syntax tags used without braces degrade to ErrorText, and
// undefined tags are retained as custom blocks.
func (cp *commentParser) parseTag() {
	start := cp.pos
	tagName := "@" + cp.tok(1).Text()
	nameRange := cp.excerpt(start, start+2)
	cp.advance(2)

	def, defined := cp.cfg.TryGetDefinition(tagName)
	if !defined {
		cp.log.AddForRange(MsgUndefinedTag,
			"the tag "+tagName+" is not defined in this configuration", nameRange)
		cp.beginBlock(tagName, nameRange, nil)
		return
	}

	cp.checkOccurrence(tagName, nameRange, def)

	switch def.Syntax {
	case tags.SyntaxModifierTag:
		node := docast.NewNode(docast.NodeBlockTag)
		node.Excerpt = nameRange
		node.Tag = &docast.TagAttrs{TagName: tagName, NameRange: nameRange, Definition: def}
		cp.section.AppendChild(node)
		cp.attrs.ModifierNodes = append(cp.attrs.ModifierNodes, node)
		cp.attrs.ModifierTags.Add(def)

	case tags.SyntaxBlockTag:
		cp.beginBlock(tagName, nameRange, def)

	case tags.SyntaxInlineTag:
		cp.section.AppendChild(cp.inlineMisuseNode(nameRange, tagName))
	}
}

// inlineMisuseNode reports an inline-syntax tag written without braces.
func (cp *commentParser) inlineMisuseNode(nameRange docast.TextRange, tagName string) *docast.Node {
	node := docast.NewNode(docast.NodeErrorText)
	node.Excerpt = nameRange
	node.Error = &docast.ErrorAttrs{
		MessageID: string(MsgInlineTagMissingBraces),
		Reason:    tagName + " is an inline tag and must be enclosed in {} braces",
	}
	cp.log.AddForRange(MsgInlineTagMissingBraces,
		tagName+" is an inline tag and must be enclosed in {} braces", nameRange)
	return node
}

// checkOccurrence tracks per-tag occurrence counts and flags duplicates of
// tags that do not allow multiple occurrences. The duplicate is flagged but
// retained (soft diagnostic).
func (cp *commentParser) checkOccurrence(tagName string, nameRange docast.TextRange, def *tags.TagDefinition) {
	key := def.Key()
	cp.tagCounts[key]++
	if cp.tagCounts[key] > 1 && !def.AllowMultiple {
		cp.log.AddForRange(MsgDuplicateTag,
			"the tag "+tagName+" must not appear more than once in a comment", nameRange)
	}
	if cp.cfg.SupportChecksEnabled() && !cp.cfg.IsTagSupported(tagName) {
		cp.log.AddForRange(MsgUnsupportedTag,
			"the tag "+tagName+" is not supported by this tool", nameRange)
	}
}

// beginBlock starts a new block for a block tag (or an undefined tag) and
// redirects subsequent content into it. Classification is by tag name
// wherever the tag is encountered, not by position.
func (cp *commentParser) beginBlock(tagName string, nameRange docast.TextRange, def *tags.TagDefinition) {
	canonical := tags.TagNameKey(tagName)
	if def != nil {
		canonical = def.Key()
	}

	var block *docast.Node
	if canonical == "@PARAM" || canonical == "@TYPEPARAM" {
		block = docast.NewNode(docast.NodeParamBlock)
	} else {
		block = docast.NewNode(docast.NodeBlock)
	}
	block.Excerpt = nameRange
	block.Tag = &docast.TagAttrs{TagName: tagName, NameRange: nameRange, Definition: def}

	content := docast.NewNode(docast.NodeSection)
	block.AppendChild(content)

	cp.comment.AppendChild(block)
	cp.section = content

	if block.Kind == docast.NodeParamBlock {
		cp.parseParamName(block)
	}

	cp.classifyBlock(canonical, block)
}

// classifyBlock files the block under the comment's typed views. The first
// occurrence of a single-use tag wins its dedicated slot; later occurrences
// land in CustomBlocks so nothing is overwritten or lost.
func (cp *commentParser) classifyBlock(canonical string, block *docast.Node) {
	switch canonical {
	case "@REMARKS":
		if cp.attrs.Remarks == nil {
			cp.attrs.Remarks = block
			return
		}
	case "@DEPRECATED":
		if cp.attrs.Deprecated == nil {
			cp.attrs.Deprecated = block
			return
		}
	case "@RETURNS":
		if cp.attrs.Returns == nil {
			cp.attrs.Returns = block
			return
		}
	case "@PARAM":
		cp.attrs.Params = append(cp.attrs.Params, block)
		return
	case "@TYPEPARAM":
		cp.attrs.TypeParams = append(cp.attrs.TypeParams, block)
		return
	case "@SEE":
		cp.attrs.SeeBlocks = append(cp.attrs.SeeBlocks, block)
		return
	}
	cp.attrs.CustomBlocks = append(cp.attrs.CustomBlocks, block)
}

// parseParamName reads the parameter name after "@param" / "@typeParam":
// an ASCII word, optionally dotted, optionally followed by a legacy hyphen
// separator before the description.
func (cp *commentParser) parseParamName(block *docast.Node) {
	block.Param = &docast.ParamAttrs{}

	cp.skipSpacing()
	if cp.tok(0).Kind != docast.TokAsciiWord {
		cp.log.AddForRange(MsgParamTagMissingName,
			"the "+block.Tag.TagName+" tag requires a parameter name", block.Tag.NameRange)
		return
	}

	nameStart := cp.pos
	cp.advance(1)
	// Dotted names document nested members, e.g. "options.retry".
	for cp.tok(0).Text() == "." && cp.tok(1).Kind == docast.TokAsciiWord &&
		cp.tok(0).Range.Pos == cp.tok(-1).Range.End &&
		cp.tok(1).Range.Pos == cp.tok(0).Range.End {
		cp.advance(2)
	}
	nameRange := cp.excerpt(nameStart, cp.pos)
	block.Param.ParameterName = nameRange.Text()
	block.Param.NameRange = nameRange

	cp.skipSpacing()
	// Legacy "@param name - description" hyphen separator.
	if cp.tok(0).Text() == "-" {
		cp.advance(1)
		cp.skipSpacing()
	}
}

func (cp *commentParser) skipSpacing() {
	for cp.tok(0).Kind == docast.TokSpacing {
		cp.advance(1)
	}
}

// parseInlineTag handles "{@name ...}". Braces must balance; an unterminated
// inline tag degrades to ErrorText spanning from the opening brace to the
// end of the comment.
func (cp *commentParser) parseInlineTag() {
	start := cp.pos
	at := cp.tok(1)
	word := cp.tok(2)

	if at.Text() != "@" || word.Kind != docast.TokAsciiWord ||
		at.Range.Pos != cp.tok(0).Range.End || word.Range.Pos != at.Range.End {
		cp.errorText(start, start+1, MsgInlineTagMissingName,
			`expecting a tag name after "{"`)
		cp.advance(1)
		return
	}

	tagName := "@" + word.Text()
	nameRange := cp.excerpt(start+1, start+3)
	cp.advance(3)

	contentStart := cp.pos
	depth := 1
	for depth > 0 {
		tok := cp.tok(0)
		if tok.Kind == docast.TokEndOfInput {
			cp.errorText(start, cp.pos, MsgInlineTagMissingRightBrace,
				"the inline tag "+tagName+` is missing its closing "}"`)
			return
		}
		switch {
		case tok.Kind == docast.TokBackslash:
			// An escaped character never opens or closes a brace.
			next := cp.tok(1)
			if !next.IsSynthetic() && next.Kind.IsPunctuationKind() {
				cp.advance(2)
				continue
			}
			cp.advance(1)
		case tok.Text() == "{":
			depth++
			cp.advance(1)
		case tok.Text() == "}":
			depth--
			cp.advance(1)
		default:
			cp.advance(1)
		}
	}
	contentEnd := cp.pos - 1 // exclude the closing brace

	def, defined := cp.cfg.TryGetDefinition(tagName)
	if !defined {
		cp.log.AddForRange(MsgUndefinedTag,
			"the tag "+tagName+" is not defined in this configuration", nameRange)
	} else {
		cp.checkOccurrence(tagName, nameRange, def)
	}

	node := cp.buildInlineNode(tagName, def, contentStart, contentEnd)
	node.Excerpt = cp.excerpt(start, cp.pos)
	node.Tag = &docast.TagAttrs{TagName: tagName, NameRange: nameRange, Definition: def}
	cp.section.AppendChild(node)
}

// buildInlineNode specializes the inline tag node for tags the model gives
// dedicated shapes: "{@link dest | text}" and "{@inheritDoc ref}".
func (cp *commentParser) buildInlineNode(tagName string, def *tags.TagDefinition, contentStart, contentEnd int) *docast.Node {
	canonical := tags.TagNameKey(tagName)
	if def != nil {
		canonical = def.Key()
	}

	switch canonical {
	case "@LINK":
		return cp.buildLinkNode(contentStart, contentEnd)
	case "@INHERITDOC":
		return docast.NewNode(docast.NodeInheritDocTag)
	default:
		return docast.NewNode(docast.NodeInlineTag)
	}
}

// buildLinkNode splits link content at the first top-level "|" into a
// destination and optional display text.
func (cp *commentParser) buildLinkNode(contentStart, contentEnd int) *docast.Node {
	node := docast.NewNode(docast.NodeLinkTag)

	pipe := -1
	for i := contentStart; i < contentEnd; i++ {
		if cp.tokens[i].Kind == docast.TokOtherPunctuation && cp.tokens[i].Text() == "|" {
			pipe = i
			break
		}
	}

	destEnd := contentEnd
	if pipe >= 0 {
		destEnd = pipe
	}

	dest := cp.trimmedSpan(contentStart, destEnd)
	link := &docast.LinkAttrs{
		Destination:      strings.TrimSpace(dest.Text()),
		DestinationRange: dest,
	}
	if pipe >= 0 {
		display := cp.trimmedSpan(pipe+1, contentEnd)
		link.DisplayText = strings.TrimSpace(display.Text())
		link.DisplayTextRange = display
	}
	node.Link = link

	if link.Destination == "" && link.DisplayText == "" {
		cp.log.AddForTokens(MsgLinkTagEmpty,
			"the {@link} tag requires a destination", cp.tokens[contentStart:contentEnd])
	}
	return node
}

// trimmedSpan returns the buffer range of tokens[start:end) with leading and
// trailing spacing and newline tokens excluded.
func (cp *commentParser) trimmedSpan(start, end int) docast.TextRange {
	for start < end && (cp.tokens[start].Kind == docast.TokSpacing || cp.tokens[start].IsSynthetic()) {
		start++
	}
	for end > start && (cp.tokens[end-1].Kind == docast.TokSpacing || cp.tokens[end-1].IsSynthetic()) {
		end--
	}
	if start >= end {
		return cp.buffer.Sub(cp.tokens[start].Range.Pos, cp.tokens[start].Range.Pos)
	}
	return cp.excerpt(start, end)
}

// parseBacktick dispatches a backtick run: three backticks opening a line
// begin a fenced code block, anything else begins a code span.
func (cp *commentParser) parseBacktick() {
	if cp.tok(1).Text() == "`" && cp.tok(2).Text() == "`" && cp.atLineStart() {
		cp.parseFencedCode()
		return
	}
	cp.parseCodeSpan()
}

// atLineStart reports whether only spacing precedes the cursor on its line.
func (cp *commentParser) atLineStart() bool {
	for i := cp.pos - 1; i >= 0; i-- {
		tok := cp.tokens[i]
		if tok.IsSynthetic() {
			return true
		}
		if tok.Kind != docast.TokSpacing {
			return false
		}
	}
	return true
}

// parseCodeSpan handles a single-backtick code span, which must close on the
// same line.
func (cp *commentParser) parseCodeSpan() {
	start := cp.pos
	cp.advance(1)

	contentStart := cp.pos
	for {
		tok := cp.tok(0)
		if tok.IsSynthetic() {
			cp.errorText(start, cp.pos, MsgCodeSpanMissingDelimiter,
				"a code span is missing its closing backtick")
			return
		}
		if tok.Text() == "`" {
			break
		}
		cp.advance(1)
	}
	contentEnd := cp.pos
	cp.advance(1) // closing backtick

	node := docast.NewNode(docast.NodeCodeSpan)
	node.Excerpt = cp.excerpt(start, cp.pos)
	node.Code = &docast.CodeAttrs{
		CodeRanges: []docast.TextRange{cp.excerpt(contentStart, max(contentStart, contentEnd))},
	}
	cp.section.AppendChild(node)
}

// parseFencedCode handles a triple-backtick fenced block: an optional info
// string, code lines, and a closing fence line. A missing closing fence is
// reported but the collected code is retained.
func (cp *commentParser) parseFencedCode() {
	start := cp.pos
	cp.advance(3)

	infoStart := cp.pos
	for !cp.tok(0).IsSynthetic() {
		cp.advance(1)
	}
	info := cp.trimmedSpan(infoStart, cp.pos)

	if cp.tok(0).Kind == docast.TokNewline {
		cp.advance(1)
	}

	attrs := &docast.CodeAttrs{
		Info:      info.Text(),
		InfoRange: info,
	}

	closed := false
	for cp.tok(0).Kind != docast.TokEndOfInput {
		if cp.fenceLineAhead() {
			cp.consumeFenceLine()
			closed = true
			break
		}
		lineStart := cp.pos
		for !cp.tok(0).IsSynthetic() {
			cp.advance(1)
		}
		attrs.CodeRanges = append(attrs.CodeRanges, cp.lineSpan(lineStart, cp.pos))
		if cp.tok(0).Kind == docast.TokNewline {
			cp.advance(1)
		}
	}

	node := docast.NewNode(docast.NodeFencedCode)
	node.Excerpt = cp.excerpt(start, cp.pos)
	attrs.Language = langdetect.ResolveFence(attrs.Info, []byte(attrs.Code()))
	node.Code = attrs
	cp.section.AppendChild(node)

	if !closed {
		cp.log.AddForNode(MsgCodeFenceMissingDelimiter,
			"a fenced code block is missing its closing delimiter", node)
	}
}

// lineSpan returns the range of tokens[start:end), or the empty range at the
// current line's start for an empty code line.
func (cp *commentParser) lineSpan(start, end int) docast.TextRange {
	if end <= start {
		line := cp.tokens[start].Line
		return cp.buffer.Sub(line.Pos, line.Pos)
	}
	return cp.excerpt(start, end)
}

// fenceLineAhead reports whether the cursor sits on a closing fence line:
// optional spacing, three backticks, optional spacing, then a line boundary.
func (cp *commentParser) fenceLineAhead() bool {
	i := 0
	for cp.tok(i).Kind == docast.TokSpacing {
		i++
	}
	for b := 0; b < 3; b++ {
		if cp.tok(i).Text() != "`" {
			return false
		}
		i++
	}
	for cp.tok(i).Kind == docast.TokSpacing {
		i++
	}
	return cp.tok(i).IsSynthetic()
}

// consumeFenceLine consumes the closing fence through its newline.
func (cp *commentParser) consumeFenceLine() {
	for !cp.tok(0).IsSynthetic() {
		cp.advance(1)
	}
	if cp.tok(0).Kind == docast.TokNewline {
		cp.advance(1)
	}
}

// parseHTMLTag handles "<name attr="value">" and "</name>". Tags are checked
// for syntactic well-formedness only; malformed attribute syntax degrades to
// ErrorText rather than aborting the comment.
func (cp *commentParser) parseHTMLTag() {
	start := cp.pos
	cp.advance(1)

	endTag := false
	if cp.tok(0).Kind == docast.TokSlash {
		endTag = true
		cp.advance(1)
	}

	if cp.tok(0).Kind != docast.TokAsciiWord {
		cp.errorText(start, cp.pos, MsgHTMLTagMissingName,
			`expecting an element name after "<"`)
		return
	}
	nameStart := cp.pos
	cp.advance(1)
	// Hyphenated custom-element names.
	for cp.tok(0).Text() == "-" && cp.tok(1).Kind == docast.TokAsciiWord {
		cp.advance(2)
	}
	nameRange := cp.excerpt(nameStart, cp.pos)

	kind := docast.NodeHTMLStartTag
	if endTag {
		kind = docast.NodeHTMLEndTag
	}
	node := docast.NewNode(kind)
	node.HTML = &docast.HTMLAttrs{Name: nameRange.Text(), NameRange: nameRange}

	if !endTag {
		if !cp.parseHTMLAttributes(start, node) {
			return
		}
	} else {
		cp.skipSpacing()
	}

	if cp.tok(0).Kind != docast.TokGreaterThan {
		cp.errorText(start, cp.pos, MsgHTMLTagMissingGreaterThan,
			`the HTML tag <`+node.HTML.Name+`> is missing its closing ">"`)
		return
	}
	cp.advance(1)

	node.Excerpt = cp.excerpt(start, cp.pos)
	cp.section.AppendChild(node)
}

// parseHTMLAttributes reads zero or more attr="value" pairs plus an optional
// self-closing slash. Returns false after degrading to ErrorText.
func (cp *commentParser) parseHTMLAttributes(start int, node *docast.Node) bool {
	for {
		cp.skipSpacing()
		tok := cp.tok(0)

		switch {
		case tok.Kind == docast.TokGreaterThan:
			return true

		case tok.Kind == docast.TokSlash:
			cp.advance(1)
			node.HTML.SelfClosing = true
			cp.skipSpacing()
			return true

		case tok.Kind == docast.TokAsciiWord:
			if !cp.parseHTMLAttribute(start, node) {
				return false
			}

		default:
			cp.errorText(start, cp.pos, MsgHTMLTagMissingGreaterThan,
				`the HTML tag <`+node.HTML.Name+`> is missing its closing ">"`)
			return false
		}
	}
}

// parseHTMLAttribute reads one attr="value" pair.
func (cp *commentParser) parseHTMLAttribute(start int, node *docast.Node) bool {
	attrNameStart := cp.pos
	cp.advance(1)
	for cp.tok(0).Text() == "-" && cp.tok(1).Kind == docast.TokAsciiWord {
		cp.advance(2)
	}
	attrNameRange := cp.excerpt(attrNameStart, cp.pos)
	cp.skipSpacing()

	if cp.tok(0).Kind != docast.TokEquals {
		cp.errorText(start, cp.pos, MsgHTMLTagMissingEquals,
			`the HTML attribute `+attrNameRange.Text()+` is missing "=" before its value`)
		return false
	}
	cp.advance(1)
	cp.skipSpacing()

	quote := cp.tok(0).Kind
	if quote != docast.TokDoubleQuote && quote != docast.TokSingleQuote {
		cp.errorText(start, cp.pos, MsgHTMLTagMissingString,
			`the HTML attribute `+attrNameRange.Text()+` requires a quoted value`)
		return false
	}
	cp.advance(1)

	valueStart := cp.pos
	for cp.tok(0).Kind != quote {
		if cp.tok(0).IsSynthetic() {
			cp.errorText(start, cp.pos, MsgHTMLTagMissingString,
				`the HTML attribute `+attrNameRange.Text()+` has an unterminated value`)
			return false
		}
		cp.advance(1)
	}
	valueRange := cp.excerpt(valueStart, max(valueStart, cp.pos))
	if cp.pos == valueStart {
		valueRange = cp.buffer.Sub(cp.tok(0).Range.Pos, cp.tok(0).Range.Pos)
	}
	cp.advance(1) // closing quote

	attr := docast.NewNode(docast.NodeHTMLAttribute)
	attr.Excerpt = cp.excerpt(attrNameStart, cp.pos)
	attr.HTML = &docast.HTMLAttrs{
		Name:      attrNameRange.Text(),
		NameRange: attrNameRange,
		Value:     valueRange.Text(),
	}
	node.AppendChild(attr)
	return true
}

// blockContent returns a block's content section.
func blockContent(block *docast.Node) *docast.Node {
	for _, child := range block.Children {
		if child.Kind == docast.NodeSection {
			return child
		}
	}
	return nil
}

// sectionHasContent reports whether a section contains anything beyond
// whitespace and soft breaks.
func sectionHasContent(section *docast.Node) bool {
	if section == nil {
		return false
	}
	for _, child := range section.Children {
		switch child.Kind {
		case docast.NodeSoftBreak:
			continue
		case docast.NodePlainText:
			if strings.TrimSpace(child.Text()) != "" {
				return true
			}
		default:
			return true
		}
	}
	return false
}
