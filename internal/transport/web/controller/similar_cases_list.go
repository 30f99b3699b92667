package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

const (
	defaultSimilarLimit = 5
	maxSimilarLimit     = 20
)

type SimilarCasesList struct {
	Fetcher     datasources.CaseFetcher
	Finder      command.Command[command.FindSimilarCasesRequest, []domain.SimilarCase]
	CacheMaxAge time.Duration
}

type SimilarCasesListResponse struct {
	Data []domain.SimilarCase `json:"data"`
}

func (c SimilarCasesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["case_id"]

	limit, err := similarLimitFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse similar cases limit", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cases, err := c.Fetcher.FetchCasesByID(r.Context(), []string{id})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch case", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(cases) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	similar, err := c.Finder.Execute(r.Context(), command.FindSimilarCasesRequest{
		CaseID:      cases[0].CaseID,
		Title:       cases[0].Title,
		Description: cases[0].Description,
		TopK:        limit,
	})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to find similar cases", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if similar == nil {
		similar = []domain.SimilarCase{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(SimilarCasesListResponse{Data: similar}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write similar cases to response", "error", err)
	}
}

func similarLimitFromQuery(q url.Values) (int, error) {
	if !q.Has("limit") {
		return defaultSimilarLimit, nil
	}

	limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if limit < 1 || limit > maxSimilarLimit {
		return 0, fmt.Errorf("limit [%d] outside range [1, %d]", limit, maxSimilarLimit)
	}

	return int(limit), nil
}
