package datasources

import (
	"context"

	"github.com/caseprep/casewise/internal/domain"
)

// FeedbackRepository combines the feedback persistence interfaces.
type FeedbackRepository interface {
	FeedbackGetter
	FeedbackCreator
}

type FeedbackGetter interface {
	// GetFeedbackByAnswerID returns domain.ErrFeedbackNotFound when no
	// record exists for the answer.
	GetFeedbackByAnswerID(ctx context.Context, answerID string) (domain.Feedback, error)
}

type FeedbackCreator interface {
	// CreateFeedback stores a new record. The store enforces at most one
	// record per answer ID and returns domain.ErrFeedbackExists when a
	// concurrent request created one first.
	CreateFeedback(ctx context.Context, feedback domain.Feedback) error
}
