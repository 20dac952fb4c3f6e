// Package errors defines the stable error code system for aocgen.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. A usage request and an exhausted season are not errors and
// have no code; both exit 0.
const (
	ECargoFailed Code = "E_CARGO_FAILED"
	EFilesystem  Code = "E_FILESYSTEM"
	EInternal    Code = "E_INTERNAL"
)

// ScaffoldError is the standard error type for aocgen errors.
type ScaffoldError struct {
	Code  Code
	Msg   string
	Cause error
}

// Error returns the stable error format: "CODE: message[: cause]".
func (e *ScaffoldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// New creates a new ScaffoldError with the given code and message.
func New(code Code, msg string) error {
	return &ScaffoldError{Code: code, Msg: msg}
}

// Wrap creates a new ScaffoldError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &ScaffoldError{Code: code, Msg: msg, Cause: err}
}

// GetCode extracts the error code from an error, or empty string if err is
// not a ScaffoldError.
func GetCode(err error) Code {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// ExitCode returns the process exit code for an error: 0 for nil, 1 for
// everything else. Usage requests and season exhaustion never produce an
// error, so they exit 0 without reaching here.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
//	<cause, if any>
//
// The cause line carries the underlying tool's or OS's native message
// unmodified.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var se *ScaffoldError
	if errors.As(err, &se) {
		fmt.Fprintf(w, "error_code: %s\n", se.Code)
		fmt.Fprintln(w, se.Msg)
		if se.Cause != nil {
			fmt.Fprintln(w, se.Cause.Error())
		}
	} else {
		fmt.Fprintln(w, err.Error())
	}
}
