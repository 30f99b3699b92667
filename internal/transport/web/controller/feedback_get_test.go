package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caseprep/casewise/internal/datasources/mocks"
	"github.com/caseprep/casewise/internal/domain"
)

func TestFeedbackGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		stored        domain.Feedback
		getErr        error
		wantStatus    int
		wantStrengths []string
	}{
		{
			name: "found",
			stored: domain.Feedback{
				ID:       "fb1",
				AnswerID: "answer1",
				RawText:  "**Strengths:**\n- Clear structure",
				Sections: domain.FeedbackSections{Strengths: []string{"Clear structure"}},
			},
			wantStatus:    http.StatusOK,
			wantStrengths: []string{"Clear structure"},
		},
		{
			name: "rederives_sections_from_raw_text",
			stored: domain.Feedback{
				ID:       "fb1",
				AnswerID: "answer1",
				RawText:  "**Strengths:**\n- Clear structure",
			},
			wantStatus:    http.StatusOK,
			wantStrengths: []string{"Clear structure"},
		},
		{
			name:       "not_found",
			getErr:     domain.ErrFeedbackNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage_error",
			getErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			feedback := mocks.NewMockFeedbackRepository(t)
			feedback.EXPECT().
				GetFeedbackByAnswerID(mock.Anything, "answer1").
				Return(tc.stored, tc.getErr)

			controller := FeedbackGet{Getter: feedback}

			req := httptest.NewRequest(http.MethodGet, "/v1/answers/answer1/feedback", nil)
			req = testContextWithUser("user1", "user@example.com")(req)
			req = mux.SetURLVars(req, map[string]string{"answer_id": "answer1"})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response domain.Feedback
				err := json.NewDecoder(rec.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, tc.wantStrengths, response.Sections.Strengths)
			}
		})
	}
}
