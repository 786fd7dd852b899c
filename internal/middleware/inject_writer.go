package middleware

import "net/http"

// InjectWriter replaces the response writer with a SafeResponseWriter so that
// later middlewares can read the final status. It must be registered first.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := w.(*SafeResponseWriter); ok {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(NewSafeResponseWriter(r.Context(), w), r)
	})
}

// statusOf reports the status written so far, or 200 for writers that do not
// track it.
func statusOf(w http.ResponseWriter) int {
	if sw, ok := w.(interface{ Status() int }); ok {
		return sw.Status()
	}
	return defaultStatus
}
