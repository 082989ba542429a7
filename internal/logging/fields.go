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
	FieldConfig    = "config"
	FieldJobs      = "jobs"
	FieldThreshold = "sibling_search_threshold"

	// Parse fields.
	FieldLanguage = "language"
	FieldKind     = "kind"
	FieldSpan     = "span"
	FieldLine     = "line"
	FieldColumn   = "column"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesParsed      = "files_parsed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
