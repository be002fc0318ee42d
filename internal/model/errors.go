package model

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates persisted bytes that do not decode into contact records.
var ErrCorrupt = errors.New("corrupt contact data")

// ValidationError indicates a field failed validation while building a Contact.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NotFoundError indicates no contact with the given name exists.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no contact found named %q", e.Name)
}
