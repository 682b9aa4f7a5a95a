package psu

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/celesteidev/PseudoScript-Utility/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// I/O errors
	ErrMsgScriptRead   = "failed to read script file"
	ErrMsgBadExtension = "script file must have a .psu extension"
	ErrMsgOutputWrite  = "failed to write output file"

	// Configuration errors
	ErrMsgConfigRead   = "failed to read project config file"
	ErrMsgConfigDecode = "failed to decode project config file"
)

// Error code constants for categorization
const (
	ErrCodeIO         = "PSU_IO"
	ErrCodeStructural = "PSU_STRUCTURAL"
	ErrCodeConfig     = "PSU_CONFIG"
)

// Metadata keys attached to errors
const (
	MetaKeyLine    = "line"
	MetaKeyCommand = "command"
	MetaKeyScript  = "script"
	MetaKeyOutput  = "output"
	MetaKeyConfig  = "config"
	MetaKeyKind    = "kind"
)

// Error kind metadata values, for callers that map errors to exit codes
const (
	ErrKindIO         = "io"
	ErrKindStructural = "structural"
)

// NewScriptReadError creates an I/O error for an unreadable script file.
func NewScriptReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeIO, ErrMsgScriptRead).
		WithMetadata(MetaKeyScript, path).
		WithMetadata(MetaKeyKind, ErrKindIO)
}

// NewBadExtensionError creates an error for a script path that does not end
// in .psu.
func NewBadExtensionError(path string) error {
	return cuserr.NewValidationError(ErrCodeIO, ErrMsgBadExtension).
		WithMetadata(MetaKeyScript, path).
		WithMetadata(MetaKeyKind, ErrKindIO)
}

// NewOutputWriteError creates an I/O error for a failed artifact write.
func NewOutputWriteError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeIO, ErrMsgOutputWrite).
		WithMetadata(MetaKeyOutput, name).
		WithMetadata(MetaKeyKind, ErrKindIO)
}

// NewConfigError creates an error for an unreadable or malformed project
// config file.
func NewConfigError(path string, msg string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg).
		WithMetadata(MetaKeyConfig, path).
		WithMetadata(MetaKeyKind, ErrKindIO)
}

// newStructuralError wraps an interpreter script error with its line and
// command metadata.
func newStructuralError(scriptErr *internal.ScriptError) error {
	return cuserr.WrapStdError(scriptErr, ErrCodeStructural, scriptErr.Msg).
		WithMetadata(MetaKeyLine, strconv.Itoa(scriptErr.Line)).
		WithMetadata(MetaKeyCommand, scriptErr.Command).
		WithMetadata(MetaKeyKind, ErrKindStructural)
}

// ErrorKind extracts the error kind metadata value, if present.
func ErrorKind(err error) (string, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return "", false
	}
	return customErr.GetMetadata(MetaKeyKind)
}

// ErrorLine extracts the 1-based script line number from a structural
// error's metadata.
func ErrorLine(err error) (int, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return 0, false
	}
	raw, ok := customErr.GetMetadata(MetaKeyLine)
	if !ok {
		return 0, false
	}
	line, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, false
	}
	return line, true
}

// ErrorCommand extracts the command name from a structural error's
// metadata.
func ErrorCommand(err error) (string, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return "", false
	}
	return customErr.GetMetadata(MetaKeyCommand)
}
