package cli

import (
	"github.com/yaklabco/syntree/pkg/runner"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// Exit codes for syntree.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitCheckErrors indicates the check found errors or unreadable files.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates the check found warnings (strict mode only).
	ExitCheckWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 ||
		result.Stats.DiagnosticsBySeverity[syntax.SeverityError.String()] > 0 {
		return ExitCheckErrors
	}

	if strict && result.Stats.DiagnosticsBySeverity[syntax.SeverityWarning.String()] > 0 {
		return ExitCheckWarnings
	}

	return ExitSuccess
}
