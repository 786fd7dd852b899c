package note_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/ferdiebergado/notes/internal/note"
	"github.com/ferdiebergado/notes/internal/pkg/message"
	"github.com/ferdiebergado/notes/internal/pkg/web"
	"github.com/ferdiebergado/notes/internal/platform/db"
)

func strPtr(s string) *string { return &s }

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) web.ErrorResponse {
	t.Helper()

	var res web.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return res
}

func TestHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		repo     *note.StubRepo
		wantCode int
		wantBody []note.NoteData
	}{
		{
			name: "returns notes",
			repo: &note.StubRepo{
				ListFunc: func(context.Context) ([]note.Note, error) {
					return []note.Note{
						{ID: 2, Title: "b", Content: strPtr("c"), CreatedAt: testTime, UpdatedAt: testTime},
						{ID: 1, Title: "a", CreatedAt: testTime, UpdatedAt: testTime},
					}, nil
				},
			},
			wantCode: http.StatusOK,
			wantBody: []note.NoteData{
				{ID: 2, Title: "b", Content: strPtr("c"), CreatedAt: testTime, UpdatedAt: testTime},
				{ID: 1, Title: "a", CreatedAt: testTime, UpdatedAt: testTime},
			},
		},
		{
			name: "empty list",
			repo: &note.StubRepo{
				ListFunc: func(context.Context) ([]note.Note, error) {
					return []note.Note{}, nil
				},
			},
			wantCode: http.StatusOK,
			wantBody: []note.NoteData{},
		},
		{
			name: "storage failure",
			repo: &note.StubRepo{
				ListFunc: func(context.Context) ([]note.Note, error) {
					return nil, fmt.Errorf("list notes: %w", db.ErrQueryFailed)
				},
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/notes", http.NoBody)
			rec := httptest.NewRecorder()
			note.NewHandler(tt.repo).List(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			if tt.wantCode != http.StatusOK {
				res := decodeError(t, rec)
				if res.Error != message.InternalError {
					t.Errorf("res.Error = %q, want: %q", res.Error, message.InternalError)
				}
				return
			}

			var got []note.NoteData
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if !reflect.DeepEqual(got, tt.wantBody) {
				t.Errorf("body = %+v, want: %+v", got, tt.wantBody)
			}
		})
	}
}

func TestHandler_Get(t *testing.T) {
	t.Parallel()

	found := note.Note{ID: 42, Title: "found", CreatedAt: testTime, UpdatedAt: testTime}

	tests := []struct {
		name      string
		id        string
		getErr    error
		wantCode  int
		wantError string
		wantCalls int
	}{
		{"found", "42", nil, http.StatusOK, "", 1},
		{"not found", "42", note.ErrNotFound, http.StatusNotFound, message.NoteNotFound, 1},
		{"non-integer id", "abc", nil, http.StatusNotFound, message.NoteNotFound, 0},
		{"zero id", "0", nil, http.StatusNotFound, message.NoteNotFound, 0},
		{"id above int4 range", "3000000000", nil, http.StatusNotFound, message.NoteNotFound, 0},
		{"storage failure", "42", db.ErrPoolExhausted, http.StatusInternalServerError, message.InternalError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls int
			repo := &note.StubRepo{
				GetFunc: func(_ context.Context, id int64) (note.Note, error) {
					calls++
					if id != 42 {
						t.Errorf("id = %d, want: %d", id, 42)
					}
					return found, tt.getErr
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/notes/"+tt.id, http.NoBody)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			note.NewHandler(repo).Get(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want: %d", calls, tt.wantCalls)
			}

			if tt.wantError != "" {
				if res := decodeError(t, rec); res.Error != tt.wantError {
					t.Errorf("res.Error = %q, want: %q", res.Error, tt.wantError)
				}
				return
			}

			var got note.NoteData
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if got.ID != found.ID || got.Title != found.Title || got.Content != nil {
				t.Errorf("body = %+v, want: %+v", got, found)
			}
		})
	}
}

func TestHandler_GetEncodesNullContent(t *testing.T) {
	t.Parallel()

	repo := &note.StubRepo{
		GetFunc: func(_ context.Context, id int64) (note.Note, error) {
			return note.Note{ID: id, Title: "t", CreatedAt: testTime, UpdatedAt: testTime}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/notes/1", http.NoBody)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	note.NewHandler(repo).Get(rec, req)

	var raw map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	content, ok := raw["content"]
	if !ok || content != nil {
		t.Errorf("raw[%q] = %v (present: %t), want: null", "content", content, ok)
	}
	for _, key := range []string{"id", "title", "created_at", "updated_at"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("body has no %q key", key)
		}
	}
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    any
		createErr error
		wantCode  int
		wantError string
	}{
		{"created", note.NoteRequest{Title: "T", Content: strPtr("C")}, nil, http.StatusCreated, ""},
		{"missing params", nil, nil, http.StatusBadRequest, message.InvalidInput},
		{"invalid input", note.NoteRequest{Title: " "}, note.ErrInvalidInput, http.StatusBadRequest, message.InvalidInput},
		{"constraint violation", note.NoteRequest{Title: "T"}, db.ErrConstraintViolation, http.StatusInternalServerError, message.InternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &note.StubRepo{
				CreateFunc: func(_ context.Context, params note.CreateParams) (note.Note, error) {
					if tt.createErr != nil {
						return note.Note{}, tt.createErr
					}
					return note.Note{ID: 1, Title: params.Title, Content: params.Content, CreatedAt: testTime, UpdatedAt: testTime}, nil
				},
			}

			ctx := context.Background()
			if tt.params != nil {
				ctx = web.NewContextWithParams(ctx, tt.params)
			}
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/notes", http.NoBody)
			rec := httptest.NewRecorder()
			note.NewHandler(repo).Create(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			if tt.wantError != "" {
				if res := decodeError(t, rec); res.Error != tt.wantError {
					t.Errorf("res.Error = %q, want: %q", res.Error, tt.wantError)
				}
				return
			}

			var got note.NoteData
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if got.ID != 1 || got.Title != "T" || got.Content == nil || *got.Content != "C" {
				t.Errorf("body = %+v, want id 1 title %q content %q", got, "T", "C")
			}
			if !got.CreatedAt.Equal(got.UpdatedAt) {
				t.Errorf("created_at = %v, updated_at = %v, want equal", got.CreatedAt, got.UpdatedAt)
			}
		})
	}
}

func TestHandler_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		id        string
		updateErr error
		wantCode  int
		wantError string
	}{
		{"updated", "3", nil, http.StatusOK, ""},
		{"missing", "3", note.ErrNotFound, http.StatusNotFound, message.NoteNotFound},
		{"non-integer id", "three", nil, http.StatusNotFound, message.NoteNotFound},
		{"id above int4 range", "3000000000", nil, http.StatusNotFound, message.NoteNotFound},
		{"storage failure", "3", errors.New("boom"), http.StatusInternalServerError, message.InternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &note.StubRepo{
				UpdateFunc: func(_ context.Context, id int64, params note.UpdateParams) (note.Note, error) {
					if tt.updateErr != nil {
						return note.Note{}, tt.updateErr
					}
					return note.Note{ID: id, Title: params.Title, Content: params.Content, CreatedAt: testTime, UpdatedAt: testTime}, nil
				},
			}

			ctx := web.NewContextWithParams(context.Background(), note.NoteRequest{Title: "new"})
			req := httptest.NewRequestWithContext(ctx, http.MethodPut, "/notes/"+tt.id, http.NoBody)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			note.NewHandler(repo).Update(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			if tt.wantError != "" {
				if res := decodeError(t, rec); res.Error != tt.wantError {
					t.Errorf("res.Error = %q, want: %q", res.Error, tt.wantError)
				}
				return
			}

			var got note.NoteData
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if got.ID != 3 || got.Title != "new" || got.Content != nil {
				t.Errorf("body = %+v, want id 3 title %q content null", got, "new")
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		id       string
		delErr   error
		wantCode int
		wantMsg  string
	}{
		{"deleted", "8", nil, http.StatusOK, message.NoteDeleted},
		{"missing", "8", note.ErrNotFound, http.StatusNotFound, message.NoteNotFound},
		{"negative id", "-8", nil, http.StatusNotFound, message.NoteNotFound},
		{"id above int4 range", "3000000000", nil, http.StatusNotFound, message.NoteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &note.StubRepo{
				DeleteFunc: func(context.Context, int64) error {
					return tt.delErr
				},
			}

			req := httptest.NewRequest(http.MethodDelete, "/notes/"+tt.id, http.NoBody)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			note.NewHandler(repo).Delete(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			if tt.wantCode == http.StatusOK {
				var res web.MessageResponse
				if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if res.Message != tt.wantMsg {
					t.Errorf("res.Message = %q, want: %q", res.Message, tt.wantMsg)
				}
				return
			}

			if res := decodeError(t, rec); res.Error != tt.wantMsg {
				t.Errorf("res.Error = %q, want: %q", res.Error, tt.wantMsg)
			}
		})
	}
}
