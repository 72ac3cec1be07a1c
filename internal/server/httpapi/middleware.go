package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/server/auth"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

type contextKey string

// userContextKey holds the authenticated *models.User for guarded routes.
const userContextKey = contextKey("user")

// userFromContext returns the user placed in ctx by requireAuth.
func userFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userContextKey).(*models.User)
	return u, ok
}

// requireAuth verifies the bearer token and resolves the subject to a stored
// user before invoking next. Every failure mode, whether a missing header, a
// bad signature, an expired token, or a deleted user, produces the same 401
// response so a caller cannot distinguish them.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		tokenString, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || tokenString == "" {
			writeUnauthorized(w, "Invalid token")
			return
		}

		subject, err := auth.GetSubjectFromToken(tokenString, s.jwtSecret)
		if err != nil {
			writeUnauthorized(w, "Invalid token")
			return
		}

		user, err := s.users.Resolve(r.Context(), subject)
		if err != nil {
			writeUnauthorized(w, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger tags every request with an id and logs method, path, status
// and duration.
func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
