package psu

import (
	"github.com/celesteidev/PseudoScript-Utility/internal"
)

// WarningKind identifies the kind of a non-fatal diagnostic raised during a
// run.
type WarningKind string

// Warning kind constants
const (
	WarningEvaluation     WarningKind = "evaluation"
	WarningUnknownCommand WarningKind = "unknown_command"
	WarningUnimplemented  WarningKind = "unimplemented"
)

// Warning is a non-fatal diagnostic with its script position.
type Warning struct {
	Kind    WarningKind
	Line    int
	Command string
	Message string
}

// Document is the result of one successful interpreter run.
type Document struct {
	// HTML is the generated markup: lines joined by newlines, no trailing
	// newline.
	HTML string
	// OutputName is the artifact filename, either the default or the one
	// set by output_html.
	OutputName string
	// Warnings are the non-fatal diagnostics collected during the run, in
	// source order.
	Warnings []Warning
}

// HasWarnings returns true if the run raised any non-fatal diagnostics.
func (d *Document) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// warningKind maps an internal warning kind to the public one.
func warningKind(kind internal.WarningKind) WarningKind {
	switch kind {
	case internal.WarningUnknownCommand:
		return WarningUnknownCommand
	case internal.WarningUnimplemented:
		return WarningUnimplemented
	default:
		return WarningEvaluation
	}
}

// publicWarnings converts interpreter warnings to the public type.
func publicWarnings(warnings []internal.Warning) []Warning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]Warning, len(warnings))
	for i, w := range warnings {
		out[i] = Warning{
			Kind:    warningKind(w.Kind),
			Line:    w.Line,
			Command: w.Command,
			Message: w.Message,
		}
	}
	return out
}
