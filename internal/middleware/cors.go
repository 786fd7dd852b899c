package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

var (
	AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	AllowedHeaders = []string{"Content-Type", "Accept"}
)

// CORS allows any origin and answers preflight requests before they reach the
// router.
func CORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: AllowedMethods,
		AllowedHeaders: AllowedHeaders,
	})
	return c.Handler(next)
}
