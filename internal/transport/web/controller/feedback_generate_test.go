package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/datasources/mocks"
	"github.com/caseprep/casewise/internal/domain"
)

type stubFeedbackGenerator struct {
	gotRequest command.GenerateFeedbackRequest
	result     domain.Feedback
	err        error
}

func (s *stubFeedbackGenerator) Execute(
	_ context.Context,
	req command.GenerateFeedbackRequest,
) (domain.Feedback, error) {
	s.gotRequest = req
	return s.result, s.err
}

func TestFeedbackGenerate_ServeHTTP(t *testing.T) {
	testCase := domain.Case{
		CaseID:      "case1",
		Title:       "Market Entry",
		Description: "Your client is considering entering the European market.",
	}

	validBody := `{"case_id":"case1","answer_text":"My structured answer."}`

	cases := []struct {
		name        string
		body        string
		fetchResult []domain.Case
		fetchErr    error
		generator   *stubFeedbackGenerator
		skipFetch   bool
		wantStatus  int
		wantLimit   int
	}{
		{
			name:        "success",
			body:        validBody,
			fetchResult: []domain.Case{testCase},
			generator: &stubFeedbackGenerator{
				result: domain.Feedback{ID: "fb1", AnswerID: "answer1"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed_body",
			body:       `{"case_id":`,
			generator:  &stubFeedbackGenerator{},
			skipFetch:  true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing_case_id",
			body:       `{"answer_text":"My structured answer."}`,
			generator:  &stubFeedbackGenerator{},
			skipFetch:  true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_case",
			body:       validBody,
			generator:  &stubFeedbackGenerator{},
			wantStatus: http.StatusNotFound,
		},
		{
			name:        "short_answer",
			body:        validBody,
			fetchResult: []domain.Case{testCase},
			generator: &stubFeedbackGenerator{
				err: domain.ValidationError{Reason: "answer must be at least 50 characters"},
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:        "quota_exhausted",
			body:        validBody,
			fetchResult: []domain.Case{testCase},
			generator: &stubFeedbackGenerator{
				err: domain.QuotaExceededError{Limit: 3},
			},
			wantStatus: http.StatusTooManyRequests,
			wantLimit:  3,
		},
		{
			name:        "generation_failure",
			body:        validBody,
			fetchResult: []domain.Case{testCase},
			generator: &stubFeedbackGenerator{
				err: domain.GenerationError{Err: errors.New("model overloaded")},
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:        "storage_failure",
			body:        validBody,
			fetchResult: []domain.Case{testCase},
			generator: &stubFeedbackGenerator{
				err: errors.New("database error"),
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockCaseFetcher(t)
			if !tc.skipFetch {
				fetcher.EXPECT().
					FetchCasesByID(mock.Anything, []string{"case1"}).
					Return(tc.fetchResult, tc.fetchErr)
			}

			controller := FeedbackGenerate{
				Fetcher:   fetcher,
				Generator: tc.generator,
			}

			req := httptest.NewRequest(
				http.MethodPost,
				"/v1/answers/answer1/feedback",
				strings.NewReader(tc.body),
			)
			req = testContextWithUser("user1", "user@example.com")(req)
			req = mux.SetURLVars(req, map[string]string{"answer_id": "answer1"})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "answer1", tc.generator.gotRequest.AnswerID)
				assert.Equal(t, "user1", tc.generator.gotRequest.UserID)
				assert.Equal(t, "user@example.com", tc.generator.gotRequest.UserEmail)
				assert.Equal(t, testCase.Title, tc.generator.gotRequest.CaseTitle)

				var response domain.Feedback
				err := json.NewDecoder(rec.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, "fb1", response.ID)
			}

			if tc.wantLimit > 0 {
				var response errorResponse
				err := json.NewDecoder(rec.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, tc.wantLimit, response.Limit)
			}
		})
	}
}
