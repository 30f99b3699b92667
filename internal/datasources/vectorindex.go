package datasources

import (
	"context"

	"github.com/caseprep/casewise/internal/domain"
)

// VectorIndexRepository combines the vector index interfaces.
type VectorIndexRepository interface {
	CaseVectorUpserter
	SimilarCaseQuerier
}

type CaseVectorUpserter interface {
	// UpsertCaseVector stores or replaces the vector for a case, with the
	// case's display metadata attached so query results can be rendered
	// without a second lookup.
	UpsertCaseVector(ctx context.Context, c domain.Case, vector []float32) error
}

type SimilarCaseQuerier interface {
	QuerySimilarCases(ctx context.Context, vector []float32, topK int) ([]domain.SimilarCase, error)
}

// NullVectorIndex is a null implementation of VectorIndexRepository.
type NullVectorIndex struct{}

var _ VectorIndexRepository = NullVectorIndex{}

func (NullVectorIndex) UpsertCaseVector(_ context.Context, _ domain.Case, _ []float32) error {
	return nil
}

func (NullVectorIndex) QuerySimilarCases(_ context.Context, _ []float32, _ int) ([]domain.SimilarCase, error) {
	return nil, nil
}
