package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/infofinder-backend/pkg/ctxutil"
)

const (
	RequestIDHeader = "X-Request-Id"
	SessionIDHeader = "X-Session-Id"
)

// RequestID reuses the incoming X-Request-Id or generates one, stores it in
// the context and echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID copies the client's X-Session-Id into the context. Whether the
// session exists is decided by the handler.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(SessionIDHeader); id != "" {
			r = r.WithContext(ctxutil.WithSessionID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
