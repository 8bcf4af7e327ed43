package logging

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in and out of the service.
const RequestIDHeader = "X-Request-ID"

// Middleware attaches a child of the global logger to every request context,
// tagged with the request ID taken from RequestIDHeader or freshly generated.
// The ID is echoed back on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		l := Logger()
		logger := l.With().Str("request_id", requestID).Logger()

		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}
