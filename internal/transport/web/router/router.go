package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
	"github.com/caseprep/casewise/internal/transport/web/controller"
)

func MakeRouter(
	cases datasources.CaseRepository,
	feedback datasources.FeedbackGetter,
	similarFinder command.Command[command.FindSimilarCasesRequest, []domain.SimilarCase],
	feedbackGenerator command.Command[command.GenerateFeedbackRequest, domain.Feedback],
	bulkIndexer command.Command[command.IndexAllCasesRequest, command.IndexAllCasesResponse],
	quotaTracker *command.QuotaTracker,
	adminPolicy domain.PrivilegePolicy,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/cases", controller.CasesList{
		Lister:      cases,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/cases/daily", controller.DailyCaseGet{
		CaseIDs:     cases,
		Fetcher:     cases,
		CacheMaxAge: latestCacheMaxAge,
		Now:         time.Now,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/cases/{case_id}", controller.CaseGet{
		Fetcher:     cases,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/cases/{case_id}/similar", controller.SimilarCasesList{
		Fetcher:     cases,
		Finder:      similarFinder,
		CacheMaxAge: 0,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/answers/{answer_id}/feedback", requireAuthMiddleware(controller.FeedbackGenerate{
		Fetcher:   cases,
		Generator: feedbackGenerator,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/answers/{answer_id}/feedback", requireAuthMiddleware(controller.FeedbackGet{
		Getter: feedback,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/me/feedback-quota", requireAuthMiddleware(controller.FeedbackQuotaGet{
		Tracker: quotaTracker,
		Now:     time.Now,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/admin/cases/index", requireAuthMiddleware(
		requireAdminMiddleware(adminPolicy)(controller.CasesIndex{
			Indexer: bulkIndexer,
		}),
	)).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Cases:           cases,
			CacheMaxAge:     latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
