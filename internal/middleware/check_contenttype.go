package middleware

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/ferdiebergado/notes/internal/pkg/message"
	"github.com/ferdiebergado/notes/internal/pkg/web"
)

// CheckContentType requires a JSON media type on requests that carry a body.
// Parameters such as charset are accepted.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.UnsupportedMedia)
			return
		}

		next.ServeHTTP(w, r)
	})
}
