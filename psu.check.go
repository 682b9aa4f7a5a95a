package psu

import (
	"context"
)

// Severity classifies a check issue.
type Severity string

// Severity constants
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single positioned finding from Check.
type Issue struct {
	Severity Severity    `json:"severity"`
	Line     int         `json:"line"`
	Command  string      `json:"command,omitempty"`
	Message  string      `json:"message"`
	Kind     WarningKind `json:"kind,omitempty"`
}

// CheckResult contains the findings of a validation run, in source order.
type CheckResult struct {
	issues []Issue
}

// Issues returns all findings.
func (r *CheckResult) Issues() []Issue {
	return r.issues
}

// Errors returns only error-severity findings.
func (r *CheckResult) Errors() []Issue {
	var errs []Issue
	for _, issue := range r.issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	return errs
}

// Warnings returns only warning-severity findings.
func (r *CheckResult) Warnings() []Issue {
	var warnings []Issue
	for _, issue := range r.issues {
		if issue.Severity == SeverityWarning {
			warnings = append(warnings, issue)
		}
	}
	return warnings
}

// HasWarnings returns true if there are warning-severity findings.
func (r *CheckResult) HasWarnings() bool {
	for _, issue := range r.issues {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// IsValid returns true if there are no error-severity findings.
func (r *CheckResult) IsValid() bool {
	for _, issue := range r.issues {
		if issue.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Check interprets the source without writing any artifact and collects
// the fatal error (if any) and all warnings as positioned issues. With
// WithStrict, warnings are reported at error severity.
func (e *Engine) Check(ctx context.Context, source string) *CheckResult {
	result := &CheckResult{issues: make([]Issue, 0)}

	doc, err := e.Compile(ctx, source)
	if err != nil {
		issue := Issue{Severity: SeverityError, Message: err.Error()}
		if line, ok := ErrorLine(err); ok {
			issue.Line = line
		}
		if command, ok := ErrorCommand(err); ok {
			issue.Command = command
		}
		result.issues = append(result.issues, issue)
		return result
	}

	severity := SeverityWarning
	if e.config.strict {
		severity = SeverityError
	}
	for _, w := range doc.Warnings {
		result.issues = append(result.issues, Issue{
			Severity: severity,
			Line:     w.Line,
			Command:  w.Command,
			Message:  w.Message,
			Kind:     w.Kind,
		})
	}
	return result
}
