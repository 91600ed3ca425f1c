package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes mutation operations can hit.
// Controllers map these to HTTP statuses; none of them are fatal and every
// retry is a manual user re-submission.
var (
	ErrIssueNotFound     = errors.New("issue not found")
	ErrAfterPhotoExists  = errors.New("an 'After' photo already exists for this issue")
	ErrAfterPhotoMissing = errors.New("'After' photo not found for this issue")
	ErrNotEditable       = errors.New("can only edit issues with 'Reported' status")
)

// ValidationError reports malformed or missing input at the boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidInput(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a boundary validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
