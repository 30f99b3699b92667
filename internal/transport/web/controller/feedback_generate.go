package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

type FeedbackGenerate struct {
	Fetcher   datasources.CaseFetcher
	Generator command.Command[command.GenerateFeedbackRequest, domain.Feedback]
}

type FeedbackGenerateRequest struct {
	CaseID     string `json:"case_id"`
	AnswerText string `json:"answer_text"`
}

func (c FeedbackGenerate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	answerID := vars["answer_id"]

	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("answer_id", answerID))

	var body FeedbackGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode feedback request body", "error", err)
		writeJSONError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.CaseID == "" {
		writeJSONError(ctx, w, http.StatusBadRequest, "case_id is required")
		return
	}

	cases, err := c.Fetcher.FetchCasesByID(ctx, []string{body.CaseID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch case for feedback", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(cases) == 0 {
		writeJSONError(ctx, w, http.StatusNotFound, "unknown case")
		return
	}

	feedback, err := c.Generator.Execute(ctx, command.GenerateFeedbackRequest{
		AnswerID:        answerID,
		UserID:          domain.UserIDFromContext(r.Context()),
		UserEmail:       domain.UserEmailFromContext(r.Context()),
		CaseID:          cases[0].CaseID,
		CaseTitle:       cases[0].Title,
		CaseDescription: cases[0].Description,
		AnswerText:      body.AnswerText,
	})
	if err != nil {
		writeFeedbackError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(feedback); err != nil {
		logger.ErrorContext(ctx, "unable to write feedback to response", "error", err)
	}
}
