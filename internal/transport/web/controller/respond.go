package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caseprep/casewise/internal/domain"
)

type errorResponse struct {
	Message string `json:"message"`
	Limit   int    `json:"limit,omitempty"`
}

func writeJSONError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Message: message}); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write error response", "error", err)
	}
}

// writeFeedbackError maps feedback pipeline failures onto status codes:
// unusable input is the client's fault, quota exhaustion is a rate limit,
// and a model failure is an upstream error.
func writeFeedbackError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := domain.LoggerFromContext(ctx)

	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSONError(ctx, w, http.StatusUnprocessableEntity, validationErr.Reason)
		return
	}

	var quotaErr domain.QuotaExceededError
	if errors.As(err, &quotaErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		if encodeErr := json.NewEncoder(w).Encode(errorResponse{
			Message: "daily feedback limit reached",
			Limit:   quotaErr.Limit,
		}); encodeErr != nil {
			logger.ErrorContext(ctx, "unable to write error response", "error", encodeErr)
		}
		return
	}

	var generationErr domain.GenerationError
	if errors.As(err, &generationErr) {
		logger.ErrorContext(ctx, "feedback generation failed", "error", err)
		writeJSONError(ctx, w, http.StatusBadGateway, "feedback generation failed")
		return
	}

	logger.ErrorContext(ctx, "unable to generate feedback", "error", err)
	w.WriteHeader(http.StatusInternalServerError)
}
