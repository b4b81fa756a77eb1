package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type contextKey string

const ctxSessionID contextKey = "session_id"

// Session assigns each request a session identifier. Clients send the id
// back on every call to keep their cart, address, and checkout state; a
// request without one gets a fresh id, echoed in the response header.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" || uuid.Validate(sessionID) != nil {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := context.WithValue(r.Context(), ctxSessionID, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the request's session identifier.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}
