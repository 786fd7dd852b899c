package app

import (
	"net/http"

	"github.com/ferdiebergado/notes/internal/middleware"
	"github.com/ferdiebergado/notes/internal/note"
	"github.com/ferdiebergado/notes/internal/platform/router"
	"github.com/ferdiebergado/notes/internal/platform/validation"
)

const (
	pathRoot    = "/{$}"
	pathHealth  = "/health"
	pathMetrics = "/metrics"
	pathNotes   = "/notes"
	pathNote    = "/notes/{id}"
)

func mountRootRoutes(r router.Router, version string, metricsHandler http.Handler) {
	r.Get(pathRoot, handleIndex(version))
	r.Get(pathHealth, handleHealth)
	r.Get(pathMetrics, metricsHandler.ServeHTTP)
}

func mountNoteRoutes(r router.Router, handler *note.Handler, validator validation.Validator, maxBodySize int64) {
	decode := middleware.DecodePayload[note.NoteRequest](maxBodySize)
	validate := middleware.ValidateInput[note.NoteRequest](validator)

	r.Get(pathNotes, handler.List)
	r.Get(pathNote, handler.Get)
	r.Post(pathNotes, handler.Create, middleware.CheckContentType, decode, validate)
	r.Put(pathNote, handler.Update, middleware.CheckContentType, decode, validate)
	r.Delete(pathNote, handler.Delete)
}
