package services

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable wraps database failures so callers can fail closed
// without inspecting driver-specific errors.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ParseError reports free-text input that does not match the point message
// grammar. The reason is safe to surface verbatim to the submitter.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse point message: %s", e.Reason)
}

// Validation failure kinds.
const (
	ErrZeroPoints     = "zero_points"
	ErrUnknownPledge  = "unknown_pledge"
	ErrSelfSubmission = "self_submission"
)

// ValidationError reports a syntactically valid candidate that fails a
// semantic check against the roster or point rules.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Workflow failure kinds.
const (
	ErrUnauthorized   = "unauthorized"
	ErrNotFound       = "not_found"
	ErrAlreadyDecided = "already_decided"
)

// WorkflowError reports a failed approval decision.
type WorkflowError struct {
	Kind    string
	Message string
}

func (e *WorkflowError) Error() string {
	return e.Message
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
