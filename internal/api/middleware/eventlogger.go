package middleware

import (
	"net/http"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/eventlog"
)

// EventLogger appends one line per request to the request log file:
// method, URL, and origin.
func EventLogger(logger *eventlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Log(eventlog.RequestLog, "%s\t%s\t%s", r.Method, r.URL.Path, r.Header.Get("Origin"))
			next.ServeHTTP(w, r)
		})
	}
}
