package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"tenfold/internal/httputil"
)

// Recovery converts a handler panic into a problem response instead of a
// dropped connection. The log line carries the request correlation ID so
// the 500 a client reports can be matched to its stack trace.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"request_id", r.Header.Get(RequestIDHeader),
						"path", r.URL.Path,
						"method", r.Method,
						"stack", string(debug.Stack()),
					)

					httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
