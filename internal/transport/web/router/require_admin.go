package router

import (
	"net/http"

	"github.com/caseprep/casewise/internal/domain"
)

func requireAdminMiddleware(policy domain.PrivilegePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := domain.UserEmailFromContext(r.Context())
			if !policy.IsPrivileged(email) {
				logger := domain.LoggerFromContext(r.Context())
				logger.WarnContext(r.Context(), "attempt to use admin endpoint by non-admin user",
					"user_id", domain.UserIDFromContext(r.Context()),
				)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
