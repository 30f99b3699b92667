package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Cases           interface {
		datasources.CaseLister
		datasources.CaseFetcher
	}
	CacheMaxAge time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Casewise Practice Cases",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of new case interview prompts added to the practice library",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

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

	caseIDs, err := c.Cases.ListLatestCaseIDs(r.Context(), filters, options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch case IDs for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cases, err := c.Cases.FetchCasesByID(r.Context(), caseIDs)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch cases for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, cs := range cases {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          cs.CaseID,
			IsPermaLink: "false",
			Title:       cs.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/cases/%s", c.FeedHostname, cs.CaseID)},
			Description: domain.DescriptionSnippet(cs.Description),
			Created:     cs.PublishedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
