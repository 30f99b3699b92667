package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/datasources/mocks"
	"github.com/caseprep/casewise/internal/domain"
)

type stubSimilarCasesFinder struct {
	gotRequest command.FindSimilarCasesRequest
	result     []domain.SimilarCase
	err        error
}

func (s *stubSimilarCasesFinder) Execute(
	_ context.Context,
	req command.FindSimilarCasesRequest,
) ([]domain.SimilarCase, error) {
	s.gotRequest = req
	return s.result, s.err
}

func TestSimilarCasesList_ServeHTTP(t *testing.T) {
	testCase := domain.Case{
		CaseID:      "case1",
		Title:       "Market Entry",
		Description: "Your client is considering entering the European market.",
	}
	testSimilar := []domain.SimilarCase{
		{CaseID: "case2", Title: "Pricing Strategy", Score: 0.91},
	}

	cases := []struct {
		name        string
		query       string
		fetchResult []domain.Case
		fetchErr    error
		finder      *stubSimilarCasesFinder
		skipFetch   bool
		wantStatus  int
		wantTopK    int
		wantSimilar []domain.SimilarCase
	}{
		{
			name:        "default_limit",
			fetchResult: []domain.Case{testCase},
			finder:      &stubSimilarCasesFinder{result: testSimilar},
			wantStatus:  http.StatusOK,
			wantTopK:    5,
			wantSimilar: testSimilar,
		},
		{
			name:        "explicit_limit",
			query:       "?limit=3",
			fetchResult: []domain.Case{testCase},
			finder:      &stubSimilarCasesFinder{result: testSimilar},
			wantStatus:  http.StatusOK,
			wantTopK:    3,
			wantSimilar: testSimilar,
		},
		{
			name:        "nil_result_encodes_empty_list",
			fetchResult: []domain.Case{testCase},
			finder:      &stubSimilarCasesFinder{},
			wantStatus:  http.StatusOK,
			wantTopK:    5,
			wantSimilar: []domain.SimilarCase{},
		},
		{
			name:       "limit_too_large",
			query:      "?limit=100",
			finder:     &stubSimilarCasesFinder{},
			skipFetch:  true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_case",
			finder:     &stubSimilarCasesFinder{},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "fetch_error",
			fetchErr:   errors.New("database error"),
			finder:     &stubSimilarCasesFinder{},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:        "finder_error",
			fetchResult: []domain.Case{testCase},
			finder:      &stubSimilarCasesFinder{err: errors.New("similarity search failed")},
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockCaseFetcher(t)
			if !tc.skipFetch {
				fetcher.EXPECT().
					FetchCasesByID(mock.Anything, []string{"case1"}).
					Return(tc.fetchResult, tc.fetchErr)
			}

			controller := SimilarCasesList{
				Fetcher:     fetcher,
				Finder:      tc.finder,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/cases/case1/similar"+tc.query, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"case_id": "case1"})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "case1", tc.finder.gotRequest.CaseID)
				assert.Equal(t, testCase.Title, tc.finder.gotRequest.Title)
				assert.Equal(t, tc.wantTopK, tc.finder.gotRequest.TopK)

				var response SimilarCasesListResponse
				err := json.NewDecoder(rec.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, tc.wantSimilar, response.Data)
			}
		})
	}
}
