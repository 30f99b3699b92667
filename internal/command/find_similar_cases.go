package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/datasources/memcache"
	"github.com/caseprep/casewise/internal/domain"
)

// DefaultSimilarCasesTTL is how long a cached similarity result is treated
// as fresh on the normal lookup path.
const DefaultSimilarCasesTTL = 24 * time.Hour

// FindSimilarCasesRequest is the request for the FindSimilarCases command.
type FindSimilarCasesRequest struct {
	CaseID      string
	Title       string
	Description string
	TopK        int
}

// FindSimilarCases returns cases related to the given one. It consults
// progressively slower and more authoritative sources: the in-process
// cache, the durable cache, and finally an embedding plus vector index
// query. A remote failure degrades to the durable cache even when stale;
// an error surfaces only when no cached entry exists at all.
type FindSimilarCases struct {
	Embedder    datasources.Embedder
	VectorIndex datasources.SimilarCaseQuerier
	Memory      *memcache.Cache
	Durable     datasources.SimilarityCacheStore
	TTL         time.Duration
	Now         func() time.Time
}

func NewFindSimilarCases(
	embedder datasources.Embedder,
	vectorIndex datasources.SimilarCaseQuerier,
	memory *memcache.Cache,
	durable datasources.SimilarityCacheStore,
) *FindSimilarCases {
	return &FindSimilarCases{
		Embedder:    embedder,
		VectorIndex: vectorIndex,
		Memory:      memory,
		Durable:     durable,
		TTL:         DefaultSimilarCasesTTL,
		Now:         time.Now,
	}
}

func (c *FindSimilarCases) Execute(
	ctx context.Context,
	req FindSimilarCasesRequest,
) ([]domain.SimilarCase, error) {
	now := c.Now()

	if entry, ok := c.Memory.Get(req.CaseID); ok && entry.Fresh(now, c.TTL) {
		return entry.Cases, nil
	}

	entry, err := c.Durable.GetCachedSimilarCases(ctx, req.CaseID)
	if err == nil && entry.Fresh(now, c.TTL) {
		c.Memory.Put(req.CaseID, entry)
		return entry.Cases, nil
	}
	if err != nil && !errors.Is(err, domain.ErrSimilarityCacheMiss) {
		// A failing durable tier must not block the remote path.
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to read durable similar-cases cache",
			"case_id", req.CaseID,
			"error", err,
		)
	}

	cases, err := c.searchRemote(ctx, req)
	if err != nil {
		return c.staleFallback(ctx, req.CaseID, err)
	}

	fresh := domain.CachedSimilarCases{Cases: cases, CachedAt: now}
	c.Memory.Put(req.CaseID, fresh)
	if err := c.Durable.PutCachedSimilarCases(ctx, req.CaseID, fresh); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to populate durable similar-cases cache",
			"case_id", req.CaseID,
			"error", err,
		)
	}

	return cases, nil
}

func (c *FindSimilarCases) searchRemote(
	ctx context.Context,
	req FindSimilarCasesRequest,
) ([]domain.SimilarCase, error) {
	vector, err := c.Embedder.EmbedText(ctx, req.Title+"\n\n"+req.Description)
	if err != nil {
		return nil, fmt.Errorf("embedding case text: %w", err)
	}
	if vector == nil {
		return nil, errors.New("embeddings driver unavailable")
	}

	// Over-fetch by one so dropping the case's own vector still leaves
	// topK results.
	matches, err := c.VectorIndex.QuerySimilarCases(ctx, vector, req.TopK+1)
	if err != nil {
		return nil, fmt.Errorf("querying similar cases: %w", err)
	}

	results := make([]domain.SimilarCase, 0, req.TopK)
	for _, match := range matches {
		if match.CaseID == req.CaseID {
			continue
		}
		if len(results) == req.TopK {
			break
		}
		results = append(results, match)
	}

	return results, nil
}

// staleFallback serves the durable cache entry regardless of age. Partial
// or stale recommendations beat a hard error for this non-critical
// feature.
func (c *FindSimilarCases) staleFallback(
	ctx context.Context,
	caseID string,
	searchErr error,
) ([]domain.SimilarCase, error) {
	entry, err := c.Durable.GetCachedSimilarCases(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("finding similar cases: %w", searchErr)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.WarnContext(ctx, "similarity search failed, serving stale cache entry",
		"case_id", caseID,
		"cached_at", entry.CachedAt,
		"error", searchErr,
	)

	return entry.Cases, nil
}
