package tags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotsdoc/pkg/tags"
)

func TestModifierTagSetAdd(t *testing.T) {
	t.Parallel()

	cfg := tags.NewDefaultConfiguration()
	set := tags.NewModifierTagSet(cfg)

	beta, ok := cfg.TryGetDefinition("@beta")
	require.True(t, ok)

	assert.True(t, set.Add(beta))
	assert.False(t, set.Add(beta), "second add of the same tag reports false")
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.HasTag(beta))
	assert.Equal(t, []string{"@beta"}, set.Names())
}

func TestModifierTagSetHasTagName(t *testing.T) {
	t.Parallel()

	cfg := tags.NewDefaultConfiguration()
	set := tags.NewModifierTagSet(cfg)

	internal, ok := cfg.TryGetDefinition("@internal")
	require.True(t, ok)
	set.Add(internal)

	assert.True(t, set.HasTagName("@internal"))
	assert.True(t, set.HasTagName("@INTERNAL"), "lookup is case-insensitive")
	assert.False(t, set.HasTagName("@beta"))
}

func TestModifierTagSetResolvesSynonyms(t *testing.T) {
	t.Parallel()

	cfg := tags.NewDefaultConfiguration()
	require.NoError(t, cfg.AddTagDefinition(&tags.TagDefinition{
		TagName: "@hidden",
		Syntax:  tags.SyntaxModifierTag,
	}))
	require.NoError(t, cfg.AddSynonym("@hidden", "@secret"))

	set := tags.NewModifierTagSet(cfg)
	hidden, ok := cfg.TryGetDefinition("@hidden")
	require.True(t, ok)
	set.Add(hidden)

	assert.True(t, set.HasTagName("@secret"),
		"membership must be visible through a synonym")
}
