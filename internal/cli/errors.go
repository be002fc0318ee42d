package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jacksmith/contacts/internal/model"
)

// Severity classifies an operation error for display.
type Severity int

const (
	// SeverityError is any failure: validation, I/O, or unexpected errors.
	SeverityError Severity = iota
	// SeverityInfo is an expected outcome such as a name not being found.
	SeverityInfo
)

// UsageError indicates bad input to the interactive shell.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Classify returns how err should be presented.
func Classify(err error) Severity {
	var nf *model.NotFoundError
	if errors.As(err, &nf) {
		return SeverityInfo
	}
	return SeverityError
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// FormatInfo returns an informational message prefixed with "info: ".
func FormatInfo(msg string) string {
	return "info: " + msg
}

// Report writes exactly one line describing err to w.
// Not-found errors are informational; everything else is an error.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var ue *UsageError
	switch {
	case Classify(err) == SeverityInfo:
		fmt.Fprintln(w, Yellow(FormatInfo(err.Error())))
	case errors.As(err, &ue):
		fmt.Fprintln(w, Yellow("warning: "+ue.Message))
	default:
		fmt.Fprintln(w, Red(FormatError(err)))
	}
}
