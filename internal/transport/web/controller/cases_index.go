package controller

import (
	"encoding/json"
	"net/http"

	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/domain"
)

type CasesIndex struct {
	Indexer command.Command[command.IndexAllCasesRequest, command.IndexAllCasesResponse]
}

func (c CasesIndex) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp, err := c.Indexer.Execute(r.Context(), command.IndexAllCasesRequest{})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "bulk case indexing failed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write indexing result to response", "error", err)
	}
}
