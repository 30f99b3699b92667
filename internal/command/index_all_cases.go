package command

import (
	"context"
	"fmt"
	"time"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

// DefaultIndexItemDelay is the pause between per-case indexing attempts,
// keeping the batch under the embedding provider's rate limits.
const DefaultIndexItemDelay = 200 * time.Millisecond

// IndexAllCasesRequest is the request for the IndexAllCases command.
type IndexAllCasesRequest struct{}

// IndexAllCasesResponse reports the outcome of a bulk indexing run.
type IndexAllCasesResponse struct {
	SuccessCount  int      `json:"success_count"`
	FailCount     int      `json:"fail_count"`
	Total         int      `json:"total"`
	FailedCaseIDs []string `json:"failed_case_ids,omitempty"`
}

// IndexAllCases drives single-case indexing across the whole corpus as a
// sequential batch: one attempt per case, a fixed delay between items, and
// per-item failures recorded without aborting the run.
type IndexAllCases struct {
	CaseIDs   datasources.CaseIDLister
	Indexer   Command[IndexCaseRequest, Empty]
	ItemDelay time.Duration
}

var _ Command[IndexAllCasesRequest, IndexAllCasesResponse] = (*IndexAllCases)(nil)

func NewIndexAllCases(
	caseIDs datasources.CaseIDLister,
	indexer Command[IndexCaseRequest, Empty],
) *IndexAllCases {
	return &IndexAllCases{
		CaseIDs:   caseIDs,
		Indexer:   indexer,
		ItemDelay: DefaultIndexItemDelay,
	}
}

func (c *IndexAllCases) Execute(
	ctx context.Context,
	_ IndexAllCasesRequest,
) (IndexAllCasesResponse, error) {
	caseIDs, err := c.CaseIDs.ListAllCaseIDs(ctx)
	if err != nil {
		return IndexAllCasesResponse{}, fmt.Errorf("listing case IDs for indexing: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	resp := IndexAllCasesResponse{Total: len(caseIDs)}

	for i, caseID := range caseIDs {
		if _, err := c.Indexer.Execute(ctx, IndexCaseRequest{CaseID: caseID}); err != nil {
			logger.WarnContext(ctx, "indexing case failed, continuing",
				"case_id", caseID,
				"error", err,
			)
			resp.FailCount++
			resp.FailedCaseIDs = append(resp.FailedCaseIDs, caseID)
		} else {
			resp.SuccessCount++
		}

		if i == len(caseIDs)-1 {
			break
		}

		select {
		case <-ctx.Done():
			return resp, ctx.Err()
		case <-time.After(c.ItemDelay):
		}
	}

	logger.InfoContext(ctx, "bulk case indexing finished",
		"total", resp.Total,
		"succeeded", resp.SuccessCount,
		"failed", resp.FailCount,
	)

	return resp, nil
}
