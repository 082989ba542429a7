package runner

import (
	"github.com/yaklabco/syntree/pkg/langdetect"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// FileOutcome is the result of parsing and verifying one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Language is the detected surface language.
	Language langdetect.Language

	// Tree is the parsed tree. Nil when Error is set.
	Tree *syntax.Tree

	// Diagnostics are the parse diagnostics with absolute spans.
	Diagnostics []syntax.LocatedDiagnostic

	// Error is set when the file could not be read, its language could not
	// be determined, or the parsed tree failed to reproduce the source.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesParsed is the number of files successfully parsed and verified.
	FilesParsed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// DiagnosticsTotal is the total diagnostic count across all files.
	DiagnosticsTotal int

	// DiagnosticsBySeverity maps severity names to counts.
	DiagnosticsBySeverity map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each discovered file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file errored or produced an
// error-severity diagnostic.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 ||
		r.Stats.DiagnosticsBySeverity[syntax.SeverityError.String()] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0 || r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesParsed++
	if len(outcome.Diagnostics) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.DiagnosticsTotal += len(outcome.Diagnostics)
	for _, diag := range outcome.Diagnostics {
		r.Stats.DiagnosticsBySeverity[diag.Severity.String()]++
	}
}
