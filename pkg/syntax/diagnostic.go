package syntax

// Severity indicates the importance of a diagnostic.
type Severity uint8

// Severity levels, most severe first.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic is a problem attached to a green element. It carries no
// absolute position: the element it is attached to supplies one wherever
// that element is mounted, which keeps diagnostics shareable along with the
// green form.
type Diagnostic struct {
	// Severity indicates how serious the problem is.
	Severity Severity

	// Code is the stable machine-readable identifier (e.g., "CALC001").
	Code string

	// Message is the human-readable description.
	Message string
}

// LocatedDiagnostic is a diagnostic bound to an absolute span, produced
// when collecting diagnostics through the red view.
type LocatedDiagnostic struct {
	Diagnostic

	// Span is the absolute source span of the element carrying the
	// diagnostic, excluding trivia.
	Span TextSpan
}
