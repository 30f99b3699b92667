package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

type CaseGet struct {
	Fetcher     datasources.CaseFetcher
	CacheMaxAge time.Duration
}

func (c CaseGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["case_id"]

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

	w.Header().Set("Content-Type", "application/json")
	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(cases[0]); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write case to response", "error", err)
	}
}
