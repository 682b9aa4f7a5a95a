package internal

import (
	"fmt"
	"strings"
)

// leading whitespace characters counted toward a line's indent
const indentCutset = " \t\r\v\f"

// SplitSource splits script source into raw lines. Line endings are not
// normalized here; trailing carriage returns fall to TrimSpace downstream.
func SplitSource(source string) []string {
	return strings.Split(source, "\n")
}

// IndentWidth returns the number of leading whitespace characters on a raw
// line. Tabs count as one column each; nesting is a strict numeric
// comparison of these counts, nothing is normalized.
func IndentWidth(raw string) int {
	return len(raw) - len(strings.TrimLeft(raw, indentCutset))
}

// SplitCommand splits a trimmed line into its command head (a run of word
// characters) and the remaining argument string. An empty head means the
// line does not start with an identifier.
func SplitCommand(trimmed string) (head string, rest string) {
	i := 0
	for i < len(trimmed) && isWordChar(trimmed[i]) {
		i++
	}
	return trimmed[:i], strings.TrimSpace(trimmed[i:])
}

// StripTrailingColons removes the run of trailing colon characters every
// command's argument string is allowed to carry.
func StripTrailingColons(args string) string {
	return strings.TrimSpace(strings.TrimRight(args, ColonSuffix))
}

// isWordChar reports whether c belongs to an identifier.
func isWordChar(c byte) bool {
	return c == CharUnderscore ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// ScriptError is a fatal structural failure pinned to a script line.
type ScriptError struct {
	Line    int
	Command string
	Msg     string
	Err     error
}

// NewScriptError creates a structural error for the given 1-based line.
func NewScriptError(line int, command, msg string) *ScriptError {
	return &ScriptError{Line: line, Command: command, Msg: msg}
}

// Error implements the error interface
func (e *ScriptError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Command, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap returns the wrapped cause, if any
func (e *ScriptError) Unwrap() error {
	return e.Err
}
