package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

type FeedbackGet struct {
	Getter datasources.FeedbackGetter
}

func (c FeedbackGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	answerID := vars["answer_id"]

	feedback, err := c.Getter.GetFeedbackByAnswerID(r.Context(), answerID)
	if err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch feedback", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Records written before section parsing existed carry only raw text;
	// re-derive the structured view on the way out.
	if feedback.Sections.Empty() && feedback.RawText != "" {
		feedback.Sections = domain.ParseFeedbackSections(feedback.RawText)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(feedback); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feedback to response", "error", err)
	}
}
