package domain

import (
	"errors"
	"fmt"
)

// ErrFeedbackNotFound is returned when no feedback record exists for an
// answer.
var ErrFeedbackNotFound = errors.New("feedback not found")

// ErrFeedbackExists is returned when a feedback record for the answer was
// created concurrently. Callers resolve it by returning the stored record.
var ErrFeedbackExists = errors.New("feedback already exists for answer")

// ErrCaseNotFound is returned when a case ID does not exist.
var ErrCaseNotFound = errors.New("case not found")

// ErrSimilarityCacheMiss is returned by cache tiers when no entry exists
// for a case, fresh or stale.
var ErrSimilarityCacheMiss = errors.New("no cached similar cases entry")

// ValidationError indicates user input failed a precondition. The condition
// won't change without the user editing their input, so it is not
// retryable as-is.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// QuotaExceededError indicates the user's daily feedback budget is spent.
// Limit is carried for user messaging; the budget resets at midnight UTC.
type QuotaExceededError struct {
	Limit int
}

func (e QuotaExceededError) Error() string {
	return fmt.Sprintf("daily feedback limit of %d reached", e.Limit)
}

// GenerationError indicates the model call failed or returned an unusable
// response. Quota is not consumed for failed generations, so it is safe to
// retry immediately.
type GenerationError struct {
	Err error
}

func (e GenerationError) Error() string {
	return "generating feedback: " + e.Err.Error()
}

func (e GenerationError) Unwrap() error {
	return e.Err
}
