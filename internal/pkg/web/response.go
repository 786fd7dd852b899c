package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/ferdiebergado/notes/internal/pkg/message"
)

// ErrorResponse is the body of every failed request.
//
// Error is safe to show to clients. Details optionally maps request fields to
// the reason they were rejected.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// OK writes data as the JSON body with the given status code.
func OK[T any](w http.ResponseWriter, status int, data T) {
	response.JSON(w, status, data)
}

// Fail writes an ErrorResponse with the given status code.
//
// The reason is logged with full detail under the "reason" key and is never
// sent to the client: msg is what the client sees.
func Fail(w http.ResponseWriter, status int, reason error, msg string, details map[string]string) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(context.Background(), level, "request failed", "status", status, "reason", reason)

	payload := &ErrorResponse{
		Error:   msg,
		Details: details,
	}
	response.JSON(w, status, payload)
}

func RespondOK[T any](w http.ResponseWriter, data T) {
	OK(w, http.StatusOK, data)
}

func RespondCreated[T any](w http.ResponseWriter, data T) {
	OK(w, http.StatusCreated, data)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusBadRequest, err, msg, details)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusNotFound, err, msg, nil)
}

func RespondUnsupportedMediaType(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusUnsupportedMediaType, err, msg, nil)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusRequestEntityTooLarge, err, msg, nil)
}

func RespondUnprocessableEntity(w http.ResponseWriter, err error, msg string, details map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, err, msg, details)
}

// RespondInternalServerError hides err from the client behind a generic message.
func RespondInternalServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, err, message.InternalError, nil)
}
