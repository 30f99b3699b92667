package datasources

import (
	"context"

	"github.com/caseprep/casewise/internal/domain"
)

// SimilarityCacheStore is the durable cache tier for similar-case results.
// Entries carry their own timestamp; freshness is the caller's decision,
// which is what allows the stale-fallback path to ignore TTL.
type SimilarityCacheStore interface {
	// GetCachedSimilarCases returns domain.ErrSimilarityCacheMiss when no
	// entry exists for the case, regardless of age.
	GetCachedSimilarCases(ctx context.Context, caseID string) (domain.CachedSimilarCases, error)
	PutCachedSimilarCases(ctx context.Context, caseID string, entry domain.CachedSimilarCases) error
}

// NullSimilarityCacheStore is a null implementation of SimilarityCacheStore.
type NullSimilarityCacheStore struct{}

var _ SimilarityCacheStore = NullSimilarityCacheStore{}

func (NullSimilarityCacheStore) GetCachedSimilarCases(_ context.Context, _ string) (domain.CachedSimilarCases, error) {
	return domain.CachedSimilarCases{}, domain.ErrSimilarityCacheMiss
}

func (NullSimilarityCacheStore) PutCachedSimilarCases(_ context.Context, _ string, _ domain.CachedSimilarCases) error {
	return nil
}
