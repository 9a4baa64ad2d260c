package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotsdoc/internal/cli"
	"github.com/yaklabco/gotsdoc/pkg/configfile"
)

// testSourceClean holds one well-formed doc comment.
const testSourceClean = `/**
 * Renders the widget.
 *
 * @param name - the widget name
 */
export function render(name: string): void {}
`

// testSourceUndefined uses a tag no configuration defines.
const testSourceUndefined = `/**
 * Uses @unknownTag here.
 */
export function widget(): void {}
`

func buildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(buildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIntegration_ParseCleanFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "render.ts", testSourceClean)

	stdout, _, err := execute(t, "parse", "--color", "never", src)

	require.NoError(t, err)
	assert.Contains(t, stdout, "No issues found")
	assert.Contains(t, stdout, "1 comment")
}

func TestIntegration_ParseReportsDiagnostics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "widget.ts", testSourceUndefined)

	stdout, _, err := execute(t, "parse", "--color", "never", src)

	require.ErrorIs(t, err, cli.ErrDiagnosticsFound)
	assert.Contains(t, stdout, "tsdoc-undefined-tag")
	// The comment opens on line 1, the tag sits on line 2 of the file.
	assert.Contains(t, stdout, src+":2:")
	assert.Contains(t, stdout, "1 issue")
}

func TestIntegration_ParseNoContextHidesCaret(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "widget.ts", testSourceUndefined)

	stdout, _, err := execute(t, "parse", "--color", "never", "--no-context", src)

	require.ErrorIs(t, err, cli.ErrDiagnosticsFound)
	assert.NotContains(t, stdout, "^")
}

func TestIntegration_ParseMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.ts")

	_, _, err := execute(t, "parse", missing)

	require.ErrorIs(t, err, cli.ErrFileRead)
}

func TestIntegration_ParseJSONFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "widget.ts", testSourceUndefined)

	stdout, _, err := execute(t, "parse", "--format", "json", src)

	require.ErrorIs(t, err, cli.ErrDiagnosticsFound)

	var diags []struct {
		File      string `json:"file"`
		Line      int    `json:"line"`
		Column    int    `json:"column"`
		MessageID string `json:"messageId"`
		Text      string `json:"text"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &diags))
	require.Len(t, diags, 1)
	assert.Equal(t, src, diags[0].File)
	assert.Equal(t, 2, diags[0].Line)
	assert.Equal(t, "tsdoc-undefined-tag", diags[0].MessageID)
}

func TestIntegration_ParseJSONCleanIsEmptyArray(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "render.ts", testSourceClean)

	stdout, _, err := execute(t, "parse", "--format", "json", src)

	require.NoError(t, err)

	var diags []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(stdout), &diags))
	assert.Empty(t, diags)
}

func TestIntegration_ParseSummaryBlock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "render.ts", testSourceClean)

	stdout, _, err := execute(t, "parse", "--color", "never", "--summary", src)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Files parsed")
	assert.Contains(t, stdout, "Comments parsed")
	assert.Contains(t, stdout, "Parse passed")
}

func TestIntegration_ParseUsesFolderConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "tsdoc.json", `{
		"tagDefinitions": [
			{"tagName": "@unknownTag", "syntaxKind": "modifier"}
		]
	}`)
	src := writeSource(t, dir, "widget.ts", testSourceUndefined)

	_, _, err := execute(t, "parse", "--color", "never", src)

	// The folder config defines the tag, so the comment parses clean.
	require.NoError(t, err)
}

func TestIntegration_ParseInvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeSource(t, dir, "tsdoc.json", `{"tagDefinitions": [`)
	src := writeSource(t, dir, "widget.ts", testSourceClean)

	_, stderr, err := execute(t, "parse", "--config", cfg, src)

	require.ErrorIs(t, err, cli.ErrConfigInvalid)
	assert.Contains(t, stderr, "tsdoc-config-invalid-json")
}

func TestIntegration_ParseDumpShowsAST(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "render.ts", testSourceClean)

	stdout, _, err := execute(t, "parse", "--color", "never", "--dump", src)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Comment")
	assert.Contains(t, stdout, "ParamBlock")
}

func TestIntegration_TagsListsVocabulary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeSource(t, dir, "tsdoc.json", `{
		"tagDefinitions": [
			{"tagName": "@widget", "syntaxKind": "block", "allowMultiple": true}
		]
	}`)

	stdout, _, err := execute(t, "tags", "--color", "never", "--config", cfg)

	require.NoError(t, err)
	assert.Contains(t, stdout, "TAG")
	assert.Contains(t, stdout, "@param")
	assert.Contains(t, stdout, "@widget")
}

func TestIntegration_InitCreatesConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "tsdoc.json")

	_, _, err := execute(t, "init", "--output", target)
	require.NoError(t, err)

	// The generated file loads without diagnostics.
	file := configfile.LoadFile(target)
	assert.False(t, file.HasErrors(), "messages: %v", file.AllMessages())
	require.Len(t, file.TagDefinitions, 1)
	assert.Equal(t, "@sampleTag", file.TagDefinitions[0].TagName)
}

func TestIntegration_InitRefusesOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := writeSource(t, dir, "tsdoc.json", `{}`)

	_, _, err := execute(t, "init", "--output", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "init", "--output", target, "--force")
	require.NoError(t, err)
}

func TestIntegration_InitYAMLFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "tsdoc.yaml")

	_, _, err := execute(t, "init", "--format", "yaml", "--output", target)
	require.NoError(t, err)

	file := configfile.LoadFile(target)
	assert.False(t, file.HasErrors(), "messages: %v", file.AllMessages())
	require.Len(t, file.TagDefinitions, 1)
}
