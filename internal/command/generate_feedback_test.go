package command

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/datasources/mocks"
	"github.com/caseprep/casewise/internal/domain"
)

const testAnswerText = "We should first size the market top-down, then check unit economics " +
	"before committing to the expansion into the new region."

const testModelResponse = `**Strengths:**
- Clear market sizing approach
- Considered unit economics early

**Areas for Improvement:**
- Quantify the revenue impact

**Missing Considerations:**
- Competitive response

**Framework Suggestions:**
- Profitability framework`

func testFeedbackRequest() GenerateFeedbackRequest {
	return GenerateFeedbackRequest{
		AnswerID:        "answer1",
		UserID:          "user1",
		UserEmail:       "user@example.com",
		CaseID:          "case1",
		CaseTitle:       "Market Entry",
		CaseDescription: "Your client is considering entering the European market.",
		AnswerText:      testAnswerText,
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func TestGenerateFeedback_Execute_ReturnsExistingWithoutRegenerating(t *testing.T) {
	stored := domain.Feedback{
		ID:       "fb1",
		AnswerID: "answer1",
		RawText:  "previously generated",
	}

	feedback := mocks.NewMockFeedbackRepository(t)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(stored, nil)

	generator := mocks.NewMockTextGenerator(t)
	quotaRepo := mocks.NewMockQuotaRepository(t)

	cmd := NewGenerateFeedback(feedback, generator, NewQuotaTracker(quotaRepo, testPolicy(t)))
	cmd.Now = fixedNow

	got, err := cmd.Execute(testContext(), testFeedbackRequest())
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestGenerateFeedback_Execute_RejectsShortAnswerBeforeQuota(t *testing.T) {
	feedback := mocks.NewMockFeedbackRepository(t)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(domain.Feedback{}, domain.ErrFeedbackNotFound)

	generator := mocks.NewMockTextGenerator(t)
	quotaRepo := mocks.NewMockQuotaRepository(t)

	cmd := NewGenerateFeedback(feedback, generator, NewQuotaTracker(quotaRepo, testPolicy(t)))
	cmd.Now = fixedNow

	req := testFeedbackRequest()
	req.AnswerText = "   too short   "

	_, err := cmd.Execute(testContext(), req)

	var validationErr domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGenerateFeedback_Execute_QuotaExceeded(t *testing.T) {
	feedback := mocks.NewMockFeedbackRepository(t)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(domain.Feedback{}, domain.ErrFeedbackNotFound)

	generator := mocks.NewMockTextGenerator(t)

	quotaRepo := mocks.NewMockQuotaRepository(t)
	quotaRepo.EXPECT().
		GetDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(domain.DailyQuota{UserID: "user1", Date: "2025-03-14", RequestCount: 3}, nil)

	cmd := NewGenerateFeedback(feedback, generator, NewQuotaTracker(quotaRepo, testPolicy(t)))
	cmd.Now = fixedNow

	_, err := cmd.Execute(testContext(), testFeedbackRequest())

	var quotaErr domain.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	require.Equal(t, domain.DailyFeedbackLimit, quotaErr.Limit)
}

func TestGenerateFeedback_Execute_GenerationFailureDoesNotChargeQuota(t *testing.T) {
	feedback := mocks.NewMockFeedbackRepository(t)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(domain.Feedback{}, domain.ErrFeedbackNotFound)

	generator := mocks.NewMockTextGenerator(t)
	generator.EXPECT().
		GenerateText(mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("model overloaded"))

	quotaRepo := mocks.NewMockQuotaRepository(t)
	quotaRepo.EXPECT().
		GetDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(domain.DailyQuota{}, nil)

	cmd := NewGenerateFeedback(feedback, generator, NewQuotaTracker(quotaRepo, testPolicy(t)))
	cmd.Now = fixedNow

	_, err := cmd.Execute(testContext(), testFeedbackRequest())

	var genErr domain.GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestGenerateFeedback_Execute_EmptyModelResponseIsGenerationError(t *testing.T) {
	feedback := mocks.NewMockFeedbackRepository(t)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(domain.Feedback{}, domain.ErrFeedbackNotFound)

	generator := mocks.NewMockTextGenerator(t)
	generator.EXPECT().
		GenerateText(mock.Anything, mock.Anything, mock.Anything).
		Return("   \n  ", nil)

	quotaRepo := mocks.NewMockQuotaRepository(t)
	quotaRepo.EXPECT().
		GetDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(domain.DailyQuota{}, nil)

	cmd := NewGenerateFeedback(feedback, generator, NewQuotaTracker(quotaRepo, testPolicy(t)))
	cmd.Now = fixedNow

	_, err := cmd.Execute(testContext(), testFeedbackRequest())

	var genErr domain.GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestGenerateFeedback_Execute_Success(t *testing.T) {
	feedback := mocks.NewMockFeedbackRepository(t)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(domain.Feedback{}, domain.ErrFeedbackNotFound)

	var created domain.Feedback
	feedback.EXPECT().
		CreateFeedback(mock.Anything, mock.Anything).
		Run(func(_ context.Context, fb domain.Feedback) {
			created = fb
		}).
		Return(nil)

	generator := mocks.NewMockTextGenerator(t)
	generator.EXPECT().
		GenerateText(mock.Anything, mock.Anything, datasources.GenerationOptions{
			Temperature:     feedbackTemperature,
			MaxOutputTokens: feedbackMaxOutputTokens,
		}).
		Run(func(_ context.Context, prompt string, _ datasources.GenerationOptions) {
			require.True(t, strings.Contains(prompt, "Market Entry"))
			require.True(t, strings.Contains(prompt, testAnswerText))
		}).
		Return(testModelResponse, nil)

	quotaRepo := mocks.NewMockQuotaRepository(t)
	quotaRepo.EXPECT().
		GetDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(domain.DailyQuota{UserID: "user1", Date: "2025-03-14", RequestCount: 1}, nil)
	quotaRepo.EXPECT().
		IncrementDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(nil)

	cmd := NewGenerateFeedback(feedback, generator, NewQuotaTracker(quotaRepo, testPolicy(t)))
	cmd.Now = fixedNow

	got, err := cmd.Execute(testContext(), testFeedbackRequest())
	require.NoError(t, err)
	require.Equal(t, created, got)

	require.NotEmpty(t, got.ID)
	require.Equal(t, "answer1", got.AnswerID)
	require.Equal(t, "user1", got.UserID)
	require.Equal(t, "case1", got.CaseID)
	require.Equal(t, testModelResponse, got.RawText)
	require.Equal(t, fixedNow(), got.GeneratedAt)
	require.Equal(t,
		[]string{"Clear market sizing approach", "Considered unit economics early"},
		got.Sections.Strengths,
	)
	require.Equal(t, []string{"Quantify the revenue impact"}, got.Sections.Improvements)
	require.Equal(t, []string{"Competitive response"}, got.Sections.Missing)
	require.Equal(t, []string{"Profitability framework"}, got.Sections.Frameworks)
}

func TestGenerateFeedback_Execute_DuplicateRaceReturnsStoredRecord(t *testing.T) {
	stored := domain.Feedback{
		ID:       "fb-winner",
		AnswerID: "answer1",
		RawText:  "the record that won the race",
	}

	feedback := mocks.NewMockFeedbackRepository(t)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(domain.Feedback{}, domain.ErrFeedbackNotFound).
		Once()
	feedback.EXPECT().
		CreateFeedback(mock.Anything, mock.Anything).
		Return(domain.ErrFeedbackExists)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(stored, nil).
		Once()

	generator := mocks.NewMockTextGenerator(t)
	generator.EXPECT().
		GenerateText(mock.Anything, mock.Anything, mock.Anything).
		Return(testModelResponse, nil)

	quotaRepo := mocks.NewMockQuotaRepository(t)
	quotaRepo.EXPECT().
		GetDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(domain.DailyQuota{}, nil)
	quotaRepo.EXPECT().
		IncrementDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(nil)

	cmd := NewGenerateFeedback(feedback, generator, NewQuotaTracker(quotaRepo, testPolicy(t)))
	cmd.Now = fixedNow

	got, err := cmd.Execute(testContext(), testFeedbackRequest())
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestGenerateFeedback_Execute_QuotaRecordFailureStillStores(t *testing.T) {
	feedback := mocks.NewMockFeedbackRepository(t)
	feedback.EXPECT().
		GetFeedbackByAnswerID(mock.Anything, "answer1").
		Return(domain.Feedback{}, domain.ErrFeedbackNotFound)
	feedback.EXPECT().
		CreateFeedback(mock.Anything, mock.Anything).
		Return(nil)

	generator := mocks.NewMockTextGenerator(t)
	generator.EXPECT().
		GenerateText(mock.Anything, mock.Anything, mock.Anything).
		Return(testModelResponse, nil)

	quotaRepo := mocks.NewMockQuotaRepository(t)
	quotaRepo.EXPECT().
		GetDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(domain.DailyQuota{}, nil)
	quotaRepo.EXPECT().
		IncrementDailyQuota(mock.Anything, "user1", "2025-03-14").
		Return(errors.New("deadlock"))

	cmd := NewGenerateFeedback(feedback, generator, NewQuotaTracker(quotaRepo, testPolicy(t)))
	cmd.Now = fixedNow

	got, err := cmd.Execute(testContext(), testFeedbackRequest())
	require.NoError(t, err)
	require.Equal(t, "answer1", got.AnswerID)
}
