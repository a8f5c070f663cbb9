package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cylin-dev/guestbook/internal/logger"
)

// RequestLog tags every request with a generated id and writes one access
// log line when the handler finishes.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestId := uuid.NewString()
		w.Header().Set("X-Request-Id", requestId)

		wrapped := newStatusWriter(w)
		next.ServeHTTP(wrapped, r)

		logger.Log.Info("request",
			"request_id", requestId,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
