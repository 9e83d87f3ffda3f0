package loader

import (
	"fmt"

	"github.com/google/uuid"
)

// DiagnosticKind classifies a record-level parse problem. Problems of
// these kinds never fail a load; the affected record is skipped and
// reported.
type DiagnosticKind string

const (
	DiagMalformedDuration DiagnosticKind = "malformed-duration"
	DiagDanglingRecord    DiagnosticKind = "dangling-record"
	DiagOrphanPayload     DiagnosticKind = "orphan-payload"
)

// Diagnostic is one skipped record: what was wrong, where it was found and
// the offending row verbatim.
type Diagnostic struct {
	Kind DiagnosticKind
	Line int
	Row  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at line %d: %s", d.Kind, d.Line, d.Row)
}

// Report describes a completed load: how it ran and every record that had
// to be skipped, in input order.
type Report struct {
	LoadID      uuid.UUID
	Workers     int
	Chunks      int
	Diagnostics []Diagnostic
}
