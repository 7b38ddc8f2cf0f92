package dispatch

import (
	"errors"
	"fmt"
)

var (
	ErrBuilderConsumed    = errors.New("dispatch builder was already consumed")
	ErrNilFunc            = errors.New("dispatch function cannot be nil")
	ErrInvariantViolation = errors.New("dispatch invariant violated")
)

// InvariantError is the panic value raised when a cast fails after its
// guard already accepted the value. It always indicates a defect in a shape
// implementation, never a condition callers should handle.
type InvariantError struct {
	Candidate Candidate
	Stage     string
	From, To  string
}

func (e *InvariantError) Error() string {
	if e == nil {
		return ErrInvariantViolation.Error()
	}

	return fmt.Sprintf("%s: candidate #%d (%s %s) failed to cast %s to %s at %s",
		ErrInvariantViolation, e.Candidate.Index, e.Candidate.Form, e.Candidate.Func, e.From, e.To, e.Stage)
}

// Unwrap returns ErrInvariantViolation for errors.Is.
func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}
