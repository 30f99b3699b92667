package controller

import (
	"log/slog"
	"net/http"

	"github.com/caseprep/casewise/internal/domain"
)

func testContext() func(*http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUser(userID, email string) func(*http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		ctx = domain.ContextWithUserEmail(ctx, email)
		return r.WithContext(ctx)
	}
}
