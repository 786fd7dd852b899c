package middleware

import (
	"net/http"
	"strings"

	"github.com/ferdiebergado/notes/internal/metrics"
)

// RouteUnmatched labels requests that did not match a registered route.
const RouteUnmatched = "unmatched"

// Instrument records one request per completed response, labeled with the
// route template rather than the resolved path.
func Instrument(rec metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec.RecordRequest(r.Method, routeTemplate(r), statusOf(w))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// routeTemplate turns a mux pattern such as "GET /notes/{id}" into
// "/notes/{id}". The exact-match marker of "/{$}" is dropped.
func routeTemplate(r *http.Request) string {
	pattern := r.Pattern
	if pattern == "" {
		return RouteUnmatched
	}

	if _, path, ok := strings.Cut(pattern, " "); ok {
		pattern = path
	}

	if i := strings.Index(pattern, "/"); i > 0 {
		// host-qualified pattern
		pattern = pattern[i:]
	}

	return strings.TrimSuffix(pattern, "{$}")
}
