package configfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotsdoc/pkg/configfile"
	"github.com/yaklabco/gotsdoc/pkg/parser"
	"github.com/yaklabco/gotsdoc/pkg/tags"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func chainIDs(file *configfile.ConfigFile) []parser.MessageID {
	var ids []parser.MessageID
	for _, msg := range file.AllMessages() {
		ids = append(ids, msg.ID)
	}
	return ids
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.json", `{
		"$schema": "https://developer.microsoft.com/json-schemas/tsdoc/v0/tsdoc.schema.json",
		"tagDefinitions": [
			{"tagName": "@widget", "syntaxKind": "block", "allowMultiple": true}
		],
		"supportForTags": {"@widget": true}
	}`)

	file := configfile.LoadFile(path)
	require.False(t, file.HasErrors(), "messages: %v", file.AllMessages())
	assert.False(t, file.FileNotFound)
	assert.Equal(t, "https://developer.microsoft.com/json-schemas/tsdoc/v0/tsdoc.schema.json", file.TSDocSchema)

	require.Len(t, file.TagDefinitions, 1)
	assert.Equal(t, "@widget", file.TagDefinitions[0].TagName)
	assert.True(t, file.SupportForTags["@widget"])
}

func TestLoadForFolderSearchesUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "tsdoc.json", `{}`)
	nested := filepath.Join(root, "src", "internal", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	file := configfile.LoadForFolder(nested)
	assert.False(t, file.FileNotFound)
	assert.Equal(t, filepath.Join(root, "tsdoc.json"), file.FilePath)
}

func TestLoadForFolderNotFound(t *testing.T) {
	t.Parallel()

	file := configfile.LoadForFolder(t.TempDir())

	assert.True(t, file.FileNotFound)
	assert.Empty(t, file.TSDocSchema)
	require.Equal(t, 1, file.Log().Len())
	assert.Equal(t, parser.MsgConfigFileNotFound, file.Log().Messages()[0].ID)

	// A missing file still flattens: the result is the standard vocabulary.
	cfg, err := file.TagConfiguration()
	require.NoError(t, err)
	_, ok := cfg.TryGetDefinition("@param")
	assert.True(t, ok)
}

func TestLoadFileInvalidJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.json", `{"tagDefinitions": [`)

	file := configfile.LoadFile(path)
	assert.True(t, file.HasErrors())
	assert.Contains(t, chainIDs(file), parser.MsgConfigInvalidJSON)

	_, err := file.TagConfiguration()
	assert.Error(t, err)
}

func TestLoadFileUnknownField(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.json", `{"tagDefinitons": []}`)

	file := configfile.LoadFile(path)
	assert.Contains(t, chainIDs(file), parser.MsgConfigInvalidJSON,
		"misspelled fields must be rejected, not ignored")
}

func TestLoadFileInvalidTagName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.json", `{
		"tagDefinitions": [{"tagName": "noAtSign", "syntaxKind": "block"}]
	}`)

	file := configfile.LoadFile(path)
	assert.Contains(t, chainIDs(file), parser.MsgConfigInvalidTagName)
}

func TestLoadFileYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.yaml", `
tagDefinitions:
  - tagName: "@widget"
    syntaxKind: modifier
`)

	file := configfile.LoadFile(path)
	require.False(t, file.HasErrors(), "messages: %v", file.AllMessages())

	cfg, err := file.TagConfiguration()
	require.NoError(t, err)
	def, ok := cfg.TryGetDefinition("@widget")
	require.True(t, ok)
	assert.Equal(t, tags.SyntaxModifierTag, def.Syntax)
}

func TestExtendsRelative(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "base.json", `{
		"tagDefinitions": [
			{"tagName": "@widget", "syntaxKind": "block"},
			{"tagName": "@gizmo", "syntaxKind": "modifier"}
		]
	}`)
	path := writeFile(t, dir, "tsdoc.json", `{
		"extends": ["./base.json"],
		"tagDefinitions": [
			{"tagName": "@widget", "syntaxKind": "block", "allowMultiple": true}
		]
	}`)

	file := configfile.LoadFile(path)
	require.False(t, file.HasErrors(), "messages: %v", file.AllMessages())
	require.Len(t, file.ExtendsFiles(), 1)

	cfg, err := file.TagConfiguration()
	require.NoError(t, err)

	// The derived redefinition replaces the base one.
	widget, ok := cfg.TryGetDefinition("@widget")
	require.True(t, ok)
	assert.True(t, widget.AllowMultiple)

	// Base-only definitions survive.
	_, ok = cfg.TryGetDefinition("@gizmo")
	assert.True(t, ok)
}

func TestExtendsNodeModules(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, filepath.Join("node_modules", "doc-preset", "tsdoc.json"), `{
		"tagDefinitions": [{"tagName": "@preset", "syntaxKind": "modifier"}]
	}`)
	project := filepath.Join(root, "packages", "app")
	path := writeFile(t, project, "tsdoc.json", `{"extends": ["doc-preset"]}`)

	file := configfile.LoadFile(path)
	require.False(t, file.HasErrors(), "messages: %v", file.AllMessages())

	cfg, err := file.TagConfiguration()
	require.NoError(t, err)
	_, ok := cfg.TryGetDefinition("@preset")
	assert.True(t, ok, "extends must resolve through an ancestor node_modules")
}

func TestExtendsUnresolved(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.json", `{"extends": ["no-such-package"]}`)

	file := configfile.LoadFile(path)
	assert.Contains(t, chainIDs(file), parser.MsgConfigUnresolvedExtends)
}

func TestExtendsMissingBaseIsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.json", `{"extends": ["./missing.json"]}`)

	file := configfile.LoadFile(path)

	// A referenced base that does not exist is an error, unlike a
	// discovery miss.
	assert.True(t, file.HasErrors())
	assert.Contains(t, chainIDs(file), parser.MsgConfigUnresolvedExtends)

	_, err := file.TagConfiguration()
	require.Error(t, err)
}

func TestLoadFileMissingPathIsError(t *testing.T) {
	t.Parallel()

	file := configfile.LoadFile(filepath.Join(t.TempDir(), "tsdoc.json"))

	assert.False(t, file.FileNotFound)
	assert.True(t, file.HasErrors())
	assert.Contains(t, chainIDs(file), parser.MsgConfigFileNotFound)
}

func TestExtendsCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"extends": ["./b.json"]}`)
	path := writeFile(t, dir, "b.json", `{"extends": ["./a.json"]}`)

	file := configfile.LoadFile(path)
	assert.True(t, file.HasErrors())

	cycles := 0
	for _, id := range chainIDs(file) {
		if id == parser.MsgConfigCyclicExtends {
			cycles++
		}
	}
	assert.Equal(t, 1, cycles, "a cycle is reported exactly once")
}

func TestExtendsSelfCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.json", `{"extends": ["./tsdoc.json"]}`)

	file := configfile.LoadFile(path)
	assert.Contains(t, chainIDs(file), parser.MsgConfigCyclicExtends)
}

func TestExtendsDiamondIsNotACycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "shared.json", `{
		"tagDefinitions": [{"tagName": "@shared", "syntaxKind": "modifier"}]
	}`)
	writeFile(t, dir, "left.json", `{"extends": ["./shared.json"]}`)
	writeFile(t, dir, "right.json", `{"extends": ["./shared.json"]}`)
	path := writeFile(t, dir, "tsdoc.json", `{"extends": ["./left.json", "./right.json"]}`)

	file := configfile.LoadFile(path)
	assert.False(t, file.HasErrors(),
		"reaching the same base twice through different paths is not a cycle")
}

func TestNoStandardTagsMostDerivedWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "base.json", `{
		"noStandardTags": true,
		"tagDefinitions": [{"tagName": "@only", "syntaxKind": "block"}]
	}`)

	// Derived file re-enables the standard tags.
	path := writeFile(t, dir, "tsdoc.json", `{
		"extends": ["./base.json"],
		"noStandardTags": false
	}`)
	file := configfile.LoadFile(path)
	cfg, err := file.TagConfiguration()
	require.NoError(t, err)

	_, hasParam := cfg.TryGetDefinition("@param")
	assert.True(t, hasParam, "the most derived setting wins")
	_, hasOnly := cfg.TryGetDefinition("@only")
	assert.True(t, hasOnly)

	// A derived file that is silent inherits the base's suppression.
	path = writeFile(t, dir, "silent.json", `{"extends": ["./base.json"]}`)
	file = configfile.LoadFile(path)
	cfg, err = file.TagConfiguration()
	require.NoError(t, err)

	_, hasParam = cfg.TryGetDefinition("@param")
	assert.False(t, hasParam)
}

func TestSynonymsAcrossExtends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "base.json", `{
		"synonyms": {"@param": ["@arg", "@argument"]}
	}`)
	path := writeFile(t, dir, "tsdoc.json", `{
		"extends": ["./base.json"],
		"removeSynonyms": {"@param": ["@argument"]}
	}`)

	file := configfile.LoadFile(path)
	cfg, err := file.TagConfiguration()
	require.NoError(t, err)

	def, ok := cfg.TryGetDefinition("@arg")
	require.True(t, ok)
	assert.Equal(t, "@param", def.TagName)

	_, ok = cfg.TryGetDefinition("@argument")
	assert.False(t, ok, "a derived file can withdraw a base synonym")
}

func TestTagConfigurationFeedsParser(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tsdoc.json", `{
		"tagDefinitions": [{"tagName": "@sideEffects", "syntaxKind": "modifier"}]
	}`)

	cfg, err := configfile.LoadFile(path).TagConfiguration()
	require.NoError(t, err)

	ctx := parser.New(cfg).Parse("/** Mutates state. @sideEffects */")
	assert.Zero(t, ctx.Log.Len())
	assert.True(t, ctx.Comment.Comment.ModifierTags.HasTagName("@sideEffects"))
}
