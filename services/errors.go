package services

import (
	"errors"
	"fmt"
)

// ErrApprovalPrecondition is returned before any write when a project
// still has tasks whose derived review state is not approved. The UI
// treats it as a disabled action rather than a failure.
var ErrApprovalPrecondition = errors.New("project has tasks pending review approval")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition %q -> %q is not allowed", e.From, e.To)
}

type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InconsistentStateError reports a partially applied approval sequence:
// the project-level completion record is already written but a later
// step failed. The record is never retracted; the caller decides between
// retrying the whole sequence and alerting an operator.
type InconsistentStateError struct {
	Step string
	Err  error
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("approval sequence inconsistent at step %q: %v", e.Step, e.Err)
}

func (e *InconsistentStateError) Unwrap() error {
	return e.Err
}
