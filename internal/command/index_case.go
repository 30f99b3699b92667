package command

import (
	"context"
	"fmt"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

// IndexCaseRequest is the request for the IndexCase command.
type IndexCaseRequest struct {
	CaseID string
}

// IndexCase embeds one case's text and upserts it into the vector index.
type IndexCase struct {
	Fetcher     datasources.CaseFetcher
	Embedder    datasources.Embedder
	VectorIndex datasources.CaseVectorUpserter
}

var _ Command[IndexCaseRequest, Empty] = (*IndexCase)(nil)

func NewIndexCase(
	fetcher datasources.CaseFetcher,
	embedder datasources.Embedder,
	vectorIndex datasources.CaseVectorUpserter,
) *IndexCase {
	return &IndexCase{
		Fetcher:     fetcher,
		Embedder:    embedder,
		VectorIndex: vectorIndex,
	}
}

func (c *IndexCase) Execute(ctx context.Context, req IndexCaseRequest) (Empty, error) {
	cases, err := c.Fetcher.FetchCasesByID(ctx, []string{req.CaseID})
	if err != nil {
		return Empty{}, fmt.Errorf("fetching case [%s]: %w", req.CaseID, err)
	}
	if len(cases) == 0 {
		return Empty{}, domain.ErrCaseNotFound
	}
	cs := cases[0]

	vector, err := c.Embedder.EmbedText(ctx, cs.Title+"\n\n"+cs.Description)
	if err != nil {
		return Empty{}, fmt.Errorf("embedding case [%s]: %w", req.CaseID, err)
	}
	if vector == nil {
		return Empty{}, fmt.Errorf("embeddings driver unavailable")
	}

	if err := c.VectorIndex.UpsertCaseVector(ctx, cs, vector); err != nil {
		return Empty{}, fmt.Errorf("upserting vector for case [%s]: %w", req.CaseID, err)
	}

	return Empty{}, nil
}
