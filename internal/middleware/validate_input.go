package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/notes/internal/pkg/message"
	"github.com/ferdiebergado/notes/internal/pkg/web"
	"github.com/ferdiebergado/notes/internal/platform/validation"
)

// ValidateInput rejects a payload decoded by DecodePayload[T] when the
// validator reports any field error.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Validating input...")
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); len(errs) > 0 {
				web.RespondBadRequest(w, errors.New("invalid input"), message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
