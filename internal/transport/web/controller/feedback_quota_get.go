package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/domain"
)

type FeedbackQuotaGet struct {
	Tracker *command.QuotaTracker
	Now     func() time.Time
}

func (c FeedbackQuotaGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := c.Tracker.Status(
		ctx,
		domain.UserIDFromContext(ctx),
		domain.UserEmailFromContext(ctx),
		c.Now(),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write quota status to response", "error", err)
	}
}
