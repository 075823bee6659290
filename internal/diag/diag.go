// Package diag formats Stoc compiler diagnostics.
package diag

import (
	"fmt"

	"github.com/stoclang/stoc/pkg/token"
)

// Phase labels a diagnostic by the pipeline stage that produced it.
type Phase string

const (
	Scanning         Phase = "Scanning error"
	Parsing          Phase = "Parsing error"
	SemanticAnalysis Phase = "Semantic analysis error"
	CodeGeneration   Phase = "Code Generation"
)

// Diagnostic is one reported error. Pos is the zero value for a global
// message with no source location, in which case Format omits the
// position prefix.
type Diagnostic struct {
	File    string
	Phase   Phase
	Pos     token.Position
	HasPos  bool
	Message string
}

// New builds a position-carrying diagnostic.
func New(file string, phase Phase, pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{
		File:    file,
		Phase:   phase,
		Pos:     pos,
		HasPos:  true,
		Message: fmt.Sprintf(format, args...),
	}
}

// Global builds a diagnostic with no source location (e.g. "missing main
// function").
func Global(file string, phase Phase, format string, args ...any) Diagnostic {
	return Diagnostic{
		File:    file,
		Phase:   phase,
		Message: fmt.Sprintf(format, args...),
	}
}

// Format renders the diagnostic as "<filename:lLINE:cCOLUMN> <phase>:
// <message>", or "<phase>: <message>" when the diagnostic has no
// position.
func (d Diagnostic) Format() string {
	if !d.HasPos {
		return fmt.Sprintf("%s: %s", d.Phase, d.Message)
	}
	return fmt.Sprintf("%s:l%d:c%d %s: %s", d.File, d.Pos.Line, d.Pos.Column, d.Phase, d.Message)
}

func (d Diagnostic) Error() string { return d.Format() }

// Bag accumulates diagnostics for a single file and tracks whether any
// were recorded, mirroring the per-phase error flag each pipeline stage
// checks before proceeding.
type Bag struct {
	File  string
	items []Diagnostic
}

// NewBag creates an empty Bag for file.
func NewBag(file string) *Bag { return &Bag{File: file} }

// Add records d.
func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

// Report formats and records a positioned diagnostic.
func (b *Bag) Report(phase Phase, pos token.Position, format string, args ...any) {
	b.Add(New(b.File, phase, pos, format, args...))
}

// ReportGlobal formats and records a location-less diagnostic.
func (b *Bag) ReportGlobal(phase Phase, format string, args ...any) {
	b.Add(Global(b.File, phase, format, args...))
}

// HasErrors reports whether any diagnostic was recorded.
func (b *Bag) HasErrors() bool { return len(b.items) > 0 }

// All returns every recorded diagnostic in report order.
func (b *Bag) All() []Diagnostic { return b.items }
