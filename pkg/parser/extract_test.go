package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotsdoc/pkg/parser"
)

func TestFindDocComments(t *testing.T) {
	t.Parallel()

	source := `// not a doc comment
/** First comment. */
function a() {}

/* plain block comment */

/**
 * Second comment.
 */
function b() {}
`

	comments := parser.FindDocComments(source)
	require.Len(t, comments, 2)

	assert.Equal(t, "/** First comment. */", comments[0].Text())
	assert.Equal(t, 2, comments[0].Line)
	assert.Equal(t, 1, comments[0].Column)

	assert.Contains(t, comments[1].Text(), "Second comment.")
	assert.Equal(t, 7, comments[1].Line)
}

func TestFindDocCommentsSkipsEmptyAndUnterminated(t *testing.T) {
	t.Parallel()

	assert.Empty(t, parser.FindDocComments("/**/ nothing here"))
	assert.Empty(t, parser.FindDocComments("/** never closed"))
	assert.Empty(t, parser.FindDocComments("no comments at all"))
}

func TestFindDocCommentsAdjacent(t *testing.T) {
	t.Parallel()

	comments := parser.FindDocComments("/** a *//** b */")
	require.Len(t, comments, 2)
	assert.Equal(t, "/** a */", comments[0].Text())
	assert.Equal(t, "/** b */", comments[1].Text())
}

func TestFindDocCommentsParseRoundTrip(t *testing.T) {
	t.Parallel()

	source := "/**\n * Adds numbers.\n * @param a - left\n */\nfunc add() {}"
	comments := parser.FindDocComments(source)
	require.Len(t, comments, 1)

	ctx := parser.Parse(comments[0].Text())
	require.Len(t, ctx.Comment.Comment.Params, 1)
	assert.Equal(t, "a", ctx.Comment.Comment.Params[0].Param.ParameterName)
}
