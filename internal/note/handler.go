package note

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ferdiebergado/notes/internal/pkg/message"
	"github.com/ferdiebergado/notes/internal/pkg/web"
)

// NoteRequest is the body of create and update requests.
type NoteRequest struct {
	Title   string  `json:"title" validate:"required,notblank,max=255"`
	Content *string `json:"content"`
}

type NoteData struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.repo.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]NoteData, 0, len(notes))
	for _, n := range notes {
		data = append(data, transformNote(n))
	}
	web.RespondOK(w, data)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	n, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	web.RespondOK(w, transformNote(n))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[NoteRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	slog.Debug("Creating note...")
	n, err := h.repo.Create(r.Context(), CreateParams(req))
	if err != nil {
		h.fail(w, err)
		return
	}
	web.RespondCreated(w, transformNote(n))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	req, err := web.ParamsFromContext[NoteRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	slog.Debug("Updating note...", "id", id)
	n, err := h.repo.Update(r.Context(), id, UpdateParams(req))
	if err != nil {
		h.fail(w, err)
		return
	}
	web.RespondOK(w, transformNote(n))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	slog.Debug("Deleting note...", "id", id)
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	web.RespondOK(w, &web.MessageResponse{Message: message.NoteDeleted})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, message.NoteNotFound)
	case errors.Is(err, ErrInvalidInput):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"title": "must not be blank"})
	default:
		web.RespondInternalServerError(w, err)
	}
}

// noteID parses the {id} path value. An id that is not a positive integer
// within the SERIAL (int4) column range cannot name a note, so it is answered
// with 404 without a query.
func noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		web.RespondNotFound(w, fmt.Errorf("%w: invalid id %q", ErrNotFound, raw), message.NoteNotFound)
		return 0, false
	}
	return id, true
}

func transformNote(n Note) NoteData {
	return NoteData{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
