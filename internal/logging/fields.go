package logging

// Field names for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Printer settings.
	FieldIndent    = "indent"
	FieldEndOfLine = "eol"
	FieldJobs      = "jobs"

	// Tree statistics.
	FieldNodes  = "nodes"
	FieldTokens = "tokens"
	FieldKind   = "kind"

	// Run statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChecked    = "files_checked"
	FieldFilesFailed     = "files_failed"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
