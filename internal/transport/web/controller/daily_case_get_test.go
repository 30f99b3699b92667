package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caseprep/casewise/internal/datasources/mocks"
	"github.com/caseprep/casewise/internal/domain"
)

func TestDailyCaseGet_ServeHTTP(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	caseIDs := []string{"case1", "case2", "case3"}
	wantID := caseIDs[domain.DailyCaseIndex(now, len(caseIDs))]

	t.Run("serves_deterministic_pick", func(t *testing.T) {
		lister := mocks.NewMockCaseIDLister(t)
		lister.EXPECT().
			ListAllCaseIDs(mock.Anything).
			Return(caseIDs, nil)

		fetcher := mocks.NewMockCaseFetcher(t)
		fetcher.EXPECT().
			FetchCasesByID(mock.Anything, []string{wantID}).
			Return([]domain.Case{{CaseID: wantID, Title: "Daily Case"}}, nil)

		controller := DailyCaseGet{
			CaseIDs:     lister,
			Fetcher:     fetcher,
			CacheMaxAge: time.Hour,
			Now:         func() time.Time { return now },
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/cases/daily", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response domain.Case
		err := json.NewDecoder(rec.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, wantID, response.CaseID)
	})

	t.Run("empty_corpus", func(t *testing.T) {
		lister := mocks.NewMockCaseIDLister(t)
		lister.EXPECT().
			ListAllCaseIDs(mock.Anything).
			Return(nil, nil)

		controller := DailyCaseGet{
			CaseIDs: lister,
			Fetcher: mocks.NewMockCaseFetcher(t),
			Now:     func() time.Time { return now },
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/cases/daily", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
