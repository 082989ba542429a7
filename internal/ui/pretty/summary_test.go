package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       10,
		FilesParsed:           10,
		FilesWithIssues:       3,
		DiagnosticsTotal:      15,
		DiagnosticsBySeverity: map[string]int{"error": 5, "warning": 10},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files parsed:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Files with issues:")
	assert.Contains(t, result, "3")
	assert.Contains(t, result, "Total issues:")
	assert.Contains(t, result, "15")
	assert.Contains(t, result, "Errors:")
	assert.Contains(t, result, "5")
	assert.Contains(t, result, "Warnings:")
	assert.Contains(t, result, "Check failed with errors")
}

func TestFormatSummary_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       5,
		FilesParsed:           5,
		DiagnosticsBySeverity: map[string]int{},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Check passed")
	assert.NotContains(t, result, "Files with issues:")
}

func TestFormatSummary_WarningsOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       2,
		FilesParsed:           2,
		FilesWithIssues:       1,
		DiagnosticsTotal:      2,
		DiagnosticsBySeverity: map[string]int{"warning": 2},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Check completed with warnings")
}

func TestFormatSummary_UnreadableFiles(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       3,
		FilesParsed:           2,
		FilesErrored:          1,
		DiagnosticsBySeverity: map[string]int{},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files errored:")
	assert.Contains(t, result, "Check failed with errors")
}

func TestFormatSummaryOneLine_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       4,
		FilesParsed:           4,
		DiagnosticsBySeverity: map[string]int{},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "No issues found")
	assert.Contains(t, result, "4 files checked")
}

func TestFormatSummaryOneLine_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       3,
		FilesParsed:           3,
		FilesWithIssues:       1,
		DiagnosticsTotal:      1,
		DiagnosticsBySeverity: map[string]int{"error": 1},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 issue")
	assert.Contains(t, result, "1 errors")
	assert.Contains(t, result, "in 1 file")
}

func TestFormatSummaryOneLine_UnreadableFile(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       2,
		FilesParsed:           1,
		FilesErrored:          1,
		DiagnosticsBySeverity: map[string]int{},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 file unreadable")
}

func TestFormatSummaryOneLine_Pluralization(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       5,
		FilesParsed:           5,
		FilesWithIssues:       2,
		DiagnosticsTotal:      7,
		DiagnosticsBySeverity: map[string]int{"warning": 7},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "7 issues")
	assert.Contains(t, result, "in 2 files")
}
