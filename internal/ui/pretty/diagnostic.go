package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// FormatDiagnostic formats a single located diagnostic for terminal
// output, resolving its span to line/column through the tree's line index.
func (s *Styles) FormatDiagnostic(tree *syntax.Tree, diag syntax.LocatedDiagnostic, showContext bool) string {
	var builder strings.Builder

	line, col := tree.Lines().PositionFor(diag.Span.Start)
	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(tree.Path()), line, col)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.Code.Render("("+diag.Code+")"),
	))

	if showContext {
		if content := tree.LineContent(line); content != nil {
			builder.WriteString(s.FormatSourceContext(string(content), col))
		}
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev syntax.Severity) string {
	switch sev {
	case syntax.SeverityError:
		return s.Error.Render("error")
	case syntax.SeverityWarning:
		return s.Warning.Render("warning")
	case syntax.SeverityInfo:
		return s.Info.Render("info")
	default:
		return sev.String()
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
