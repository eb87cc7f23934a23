package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by repositories. Usecases translate them, delivery
// maps them to status codes.
var (
	ErrNotFound          = errors.New("record not found")
	ErrEmailTaken        = errors.New("email already exists")
	ErrInvalidReferral   = errors.New("invalid referral code")
	ErrDuplicateMemberNo = errors.New("member number already exists")
)

// ValidationError carries every failed field check for a request so the
// caller can fix them all in one resubmission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Fields, "; ")
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// PersistenceError wraps an unexpected storage failure. The original cause is
// kept for diagnostics; delivery only shows a generic message.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
