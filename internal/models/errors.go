package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNoRecipients    = errors.New("no recipients found for broadcast")
	ErrAlreadyEnrolled = errors.New("lead is already enrolled in this sequence")
	ErrMissingAddress  = errors.New("lead has no phone number")
)

// ValidationError reports a missing or malformed field on an incoming entity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// InvalidStateError reports an illegal lifecycle transition, e.g. sending an
// already-sent broadcast or deleting one that is currently sending.
type InvalidStateError struct {
	Entity string
	ID     string
	Status string
	Action string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s %s with status %q", e.Action, e.Entity, e.ID, e.Status)
}

// ProviderError carries the code and message returned by the messaging
// provider for a failed send.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}
