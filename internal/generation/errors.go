package generation

import "fmt"

// Validation bounds for inbound text. Requests outside these bounds
// are rejected before any external call.
const (
	MinJobDescriptionLen = 10
	MaxJobDescriptionLen = 50000
)

// ValidationError indicates a request was rejected before any external
// call was made. It is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// PersistenceError indicates the generated artifact could not be
// stored. It is terminal: the write is not idempotent-safe to blindly
// retry without deduplication, which this pipeline does not implement.
type PersistenceError struct {
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to store generated resume: %v", e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// ValidateJobDescription checks the job description length bounds.
func ValidateJobDescription(jd string) error {
	if len(jd) < MinJobDescriptionLen {
		return &ValidationError{Field: "job_description", Message: "too short"}
	}
	if len(jd) > MaxJobDescriptionLen {
		return &ValidationError{Field: "job_description", Message: "too long"}
	}
	return nil
}
