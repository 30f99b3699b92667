package datasources

import (
	"context"

	"github.com/caseprep/casewise/internal/domain"
)

// CaseRepository combines all case-catalogue interfaces.
type CaseRepository interface {
	CaseLister
	CaseFetcher
	CaseIDLister
	CaseCounter
}

type CaseLister interface {
	ListLatestCaseIDs(
		ctx context.Context,
		filters domain.CaseFilters,
		options domain.CaseListOptions,
	) ([]string, error)
}

type CaseFetcher interface {
	FetchCasesByID(ctx context.Context, caseIDs []string) ([]domain.Case, error)
}

type CaseIDLister interface {
	ListAllCaseIDs(ctx context.Context) ([]string, error)
}

type CaseCounter interface {
	TotalMatchingCases(ctx context.Context, filters domain.CaseFilters) (int64, error)
}
