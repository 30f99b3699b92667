package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

type CasesList struct {
	Lister interface {
		datasources.CaseLister
		datasources.CaseFetcher
	}
	CacheMaxAge time.Duration
}

type CasesListResponse struct {
	Data     []domain.Case     `json:"data"`
	Metadata CasesListMetadata `json:"metadata"`
}

type CasesListMetadata struct{}

func (c CasesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filters, err := caseFiltersFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse case filters in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse case list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	caseIDs, err := c.Lister.ListLatestCaseIDs(r.Context(), filters, options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch case IDs", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cases, err := c.Lister.FetchCasesByID(r.Context(), caseIDs)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch case metadata", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(CasesListResponse{
		Data:     cases,
		Metadata: CasesListMetadata{},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write cases to response", "error", err)
	}
}

func caseFiltersFromQuery(q url.Values) (domain.CaseFilters, error) {
	var filters domain.CaseFilters

	if q.Has("only_categories") {
		filters.OnlyCategories = strings.Split(q.Get("only_categories"), ",")
	}

	if q.Has("only_difficulties") {
		filters.OnlyDifficulties = strings.Split(q.Get("only_difficulties"), ",")
	}

	return filters, nil
}

func listOptionsFromQuery(q url.Values) (domain.CaseListOptions, error) {
	var options domain.CaseListOptions
	if q.Has("page") {
		page, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return domain.CaseListOptions{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if page < 1 {
			return domain.CaseListOptions{}, fmt.Errorf("invalid page value [%d]", page)
		}
		options.Page = int(page)
	} else {
		options.Page = 1
	}

	if q.Has("page_size") {
		pageSize, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return domain.CaseListOptions{}, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if pageSizeLimit := int64(200); pageSize > pageSizeLimit {
			return domain.CaseListOptions{}, fmt.Errorf("page size [%d] exceeds limit [%d]",
				pageSize, pageSizeLimit)
		}
		if pageSize < 1 {
			return domain.CaseListOptions{}, fmt.Errorf("invalid page size value [%d]", pageSize)
		}
		options.PageSize = int(pageSize)
	} else {
		options.PageSize = 100
	}

	if q.Has("sort") {
		orderings := strings.Split(q.Get("sort"), ",")

		for _, ordering := range orderings {
			field := ordering
			desc := false
			if strings.HasSuffix(ordering, "_desc") {
				field = ordering[:len(ordering)-5]
				desc = true
			}

			if !slices.Contains(domain.ValidOrderingFields, domain.CaseOrderingField(field)) {
				return domain.CaseListOptions{}, fmt.Errorf("unrecognised case ordering field: %s", field)
			}

			options.Ordering = append(options.Ordering, domain.CaseOrdering{
				Field: domain.CaseOrderingField(field),
				Desc:  desc,
			})
		}
	}

	return options, nil
}
