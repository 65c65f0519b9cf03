// file: internals/helpers/errs/errors.go
//
// Domain error taxonomy for the enrollment-to-ledger workflow. Controllers
// map these onto the JSON error envelope; stores and services return them
// instead of raw fiber errors so the pipeline stays transport-agnostic.
package errs

import "fmt"

// ValidationError rejects a submission before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// DuplicateMobileError: a student with the same mobile already exists in the
// school scope and the submission is not an edit of that student.
type DuplicateMobileError struct {
	Mobile string
}

func (e *DuplicateMobileError) Error() string {
	return fmt.Sprintf("a student with mobile %s already exists", e.Mobile)
}

// NotFoundError: a required lookup (account group, payment-mode account,
// admission being edited, ...) did not resolve.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// StepError tags a store/workflow failure with the pipeline step it happened
// in. Writes committed by earlier steps are NOT rolled back; the caller sees
// which step failed and retries by resubmitting.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// AtStep wraps err with its pipeline step, passing nil through.
func AtStep(step string, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Step: step, Err: err}
}
