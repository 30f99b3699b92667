package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

// DailyCaseGet serves the case-of-the-day. The pick is a pure function of
// the UTC date and the corpus size, so it needs no stored state and every
// instance serves the same case.
type DailyCaseGet struct {
	CaseIDs     datasources.CaseIDLister
	Fetcher     datasources.CaseFetcher
	CacheMaxAge time.Duration
	Now         func() time.Time
}

func (c DailyCaseGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caseIDs, err := c.CaseIDs.ListAllCaseIDs(r.Context())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list case IDs for daily pick", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(caseIDs) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	dailyID := caseIDs[domain.DailyCaseIndex(c.Now(), len(caseIDs))]

	cases, err := c.Fetcher.FetchCasesByID(r.Context(), []string{dailyID})
	if err != nil || len(cases) == 0 {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch daily case", "case_id", dailyID, "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(cases[0]); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write daily case to response", "error", err)
	}
}
