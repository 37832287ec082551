package scanner

import (
	"fmt"

	"github.com/glazari/javaimports/astview"
)

// ParseFailure is returned when the parser itself reported diagnostics;
// the scanner produces no partial ScanResult in that case (spec §7).
type ParseFailure struct {
	Diagnostics []astview.Diagnostic
}

func (e *ParseFailure) Error() string {
	if len(e.Diagnostics) == 0 {
		return "scanner: parse failure"
	}
	first := e.Diagnostics[0]
	return fmt.Sprintf("scanner: parse failure: %d:%d: %s (and %d more)",
		first.Line, first.Column, first.Message, len(e.Diagnostics)-1)
}

// Cancelled is returned when the caller-supplied cancellation signal
// fired during traversal (spec §5, §7).
type Cancelled struct{}

func (e *Cancelled) Error() string { return "scanner: cancelled" }

// InternalInvariantViolation marks an unreachable branch reached during
// traversal. Fatal, not recoverable (spec §7) — carries the offending
// node kind and a short path description for diagnosis.
type InternalInvariantViolation struct {
	NodeKind string
	Path     string
}

func (e *InternalInvariantViolation) Error() string {
	return fmt.Sprintf("scanner: internal invariant violation at %s (node kind %q)", e.Path, e.NodeKind)
}
