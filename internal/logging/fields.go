// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfigPath = "config_path"
	FieldExtends    = "extends"
	FieldTagCount   = "tag_count"

	// Parse statistics fields.
	FieldComments    = "comments"
	FieldDiagnostics = "diagnostics"
	FieldLine        = "line"
	FieldColumn      = "column"
	FieldMessageID   = "message_id"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Tag fields.
	FieldTagName  = "tag_name"
	FieldSyntax   = "syntax"
	FieldMultiple = "multiple"
)
