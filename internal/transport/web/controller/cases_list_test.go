package controller

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseprep/casewise/internal/domain"
)

func TestCaseFiltersFromQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  domain.CaseFilters
	}{
		{
			name:  "no_filters",
			query: "",
			want:  domain.CaseFilters{},
		},
		{
			name:  "categories",
			query: "only_categories=profitability,market-entry",
			want:  domain.CaseFilters{OnlyCategories: []string{"profitability", "market-entry"}},
		},
		{
			name:  "difficulties",
			query: "only_difficulties=hard",
			want:  domain.CaseFilters{OnlyDifficulties: []string{"hard"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, err := caseFiltersFromQuery(q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestListOptionsFromQuery(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		want    domain.CaseListOptions
		wantErr bool
	}{
		{
			name:  "defaults",
			query: "",
			want:  domain.CaseListOptions{Page: 1, PageSize: 100},
		},
		{
			name:  "explicit_pagination",
			query: "page=3&page_size=25",
			want:  domain.CaseListOptions{Page: 3, PageSize: 25},
		},
		{
			name:  "sort_descending",
			query: "sort=published_at_desc",
			want: domain.CaseListOptions{
				Page:     1,
				PageSize: 100,
				Ordering: []domain.CaseOrdering{
					{Field: domain.CaseOrderingFieldPublishedAt, Desc: true},
				},
			},
		},
		{
			name:  "sort_multiple_fields",
			query: "sort=difficulty,title",
			want: domain.CaseListOptions{
				Page:     1,
				PageSize: 100,
				Ordering: []domain.CaseOrdering{
					{Field: domain.CaseOrderingFieldDifficulty},
					{Field: domain.CaseOrderingFieldTitle},
				},
			},
		},
		{
			name:    "unknown_sort_field",
			query:   "sort=upvotes",
			wantErr: true,
		},
		{
			name:    "page_below_one",
			query:   "page=0",
			wantErr: true,
		},
		{
			name:    "page_size_above_limit",
			query:   "page_size=500",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			got, err := listOptionsFromQuery(q)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
