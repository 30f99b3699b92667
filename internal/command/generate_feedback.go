package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

// MinAnswerLength is the minimum trimmed answer length accepted for
// feedback generation. Shorter input cannot yield meaningful feedback and
// must not consume quota.
const MinAnswerLength = 50

const feedbackTemperature = 0.4
const feedbackMaxOutputTokens = 1024

// GenerateFeedbackRequest is the request for the GenerateFeedback command.
type GenerateFeedbackRequest struct {
	AnswerID        string
	UserID          string
	UserEmail       string
	CaseID          string
	CaseTitle       string
	CaseDescription string
	AnswerText      string
}

// GenerateFeedback runs the AI feedback pipeline for one answer:
// idempotency check, input validation, quota check, model call, parsing,
// quota charge, persistence.
type GenerateFeedback struct {
	Feedback  datasources.FeedbackRepository
	Generator datasources.TextGenerator
	Quota     *QuotaTracker
	Now       func() time.Time
}

func NewGenerateFeedback(
	feedback datasources.FeedbackRepository,
	generator datasources.TextGenerator,
	quota *QuotaTracker,
) *GenerateFeedback {
	return &GenerateFeedback{
		Feedback:  feedback,
		Generator: generator,
		Quota:     quota,
		Now:       time.Now,
	}
}

func (c *GenerateFeedback) Execute(
	ctx context.Context,
	req GenerateFeedbackRequest,
) (domain.Feedback, error) {
	// A stored record for this answer is returned as-is: re-invoking the
	// pipeline never consumes quota or calls the model again.
	existing, err := c.Feedback.GetFeedbackByAnswerID(ctx, req.AnswerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrFeedbackNotFound) {
		return domain.Feedback{}, fmt.Errorf("checking for existing feedback: %w", err)
	}

	// Validation runs before the quota check so input the pipeline already
	// knows it will reject never wastes budget.
	if len(strings.TrimSpace(req.AnswerText)) < MinAnswerLength {
		return domain.Feedback{}, domain.ValidationError{
			Reason: fmt.Sprintf("answer must be at least %d characters", MinAnswerLength),
		}
	}

	now := c.Now()

	status := c.Quota.Status(ctx, req.UserID, req.UserEmail, now)
	if status.Remaining <= 0 {
		return domain.Feedback{}, domain.QuotaExceededError{Limit: status.Limit}
	}

	// Quota is charged only after a successful generation, so a transient
	// provider outage never burns the user's daily allowance.
	prompt := domain.BuildFeedbackPrompt(req.CaseTitle, req.CaseDescription, req.AnswerText)
	rawText, err := c.Generator.GenerateText(ctx, prompt, datasources.GenerationOptions{
		Temperature:     feedbackTemperature,
		MaxOutputTokens: feedbackMaxOutputTokens,
	})
	if err != nil {
		return domain.Feedback{}, domain.GenerationError{Err: err}
	}
	if strings.TrimSpace(rawText) == "" {
		return domain.Feedback{}, domain.GenerationError{Err: errors.New("empty model response")}
	}

	sections := domain.ParseFeedbackSections(rawText)

	// An increment failure is logged, not surfaced: the generation already
	// succeeded and discarding it would waste the model call.
	if err := c.Quota.Record(ctx, req.UserID, req.UserEmail, now); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to record feedback quota consumption",
			"user_id", req.UserID,
			"error", err,
		)
	}

	feedback := domain.Feedback{
		ID:          uuid.New().String(),
		AnswerID:    req.AnswerID,
		UserID:      req.UserID,
		CaseID:      req.CaseID,
		CaseTitle:   req.CaseTitle,
		AnswerText:  req.AnswerText,
		RawText:     rawText,
		Sections:    sections,
		GeneratedAt: now.UTC(),
	}

	if err := c.Feedback.CreateFeedback(ctx, feedback); err != nil {
		if errors.Is(err, domain.ErrFeedbackExists) {
			// Lost a duplicate-request race; the stored record wins.
			return c.Feedback.GetFeedbackByAnswerID(ctx, req.AnswerID)
		}
		return domain.Feedback{}, fmt.Errorf("storing feedback: %w", err)
	}

	return feedback, nil
}
