package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/notes/internal/middleware"
)

func TestSafeResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		body      string
		wantCode  int
		wantBytes int
	}{
		{"Explicit status", http.StatusCreated, `{"id":1}`, http.StatusCreated, 8},
		{"Implicit status", 0, "ok", http.StatusOK, 2},
		{"Server error keeps body", http.StatusInternalServerError, `{"error":"x"}`, http.StatusInternalServerError, 13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			w := middleware.NewSafeResponseWriter(context.Background(), rec)
			if tc.status != 0 {
				w.WriteHeader(tc.status)
				w.WriteHeader(http.StatusTeapot)
			}
			if _, err := w.Write([]byte(tc.body)); err != nil {
				t.Fatalf("w.Write() = %v, want: %v", err, nil)
			}
			// Second write must not deadlock.
			if _, err := w.Write(nil); err != nil {
				t.Fatalf("w.Write(nil) = %v, want: %v", err, nil)
			}

			if got := w.Status(); got != tc.wantCode {
				t.Errorf("w.Status() = %d, want: %d", got, tc.wantCode)
			}
			if got := rec.Code; got != tc.wantCode {
				t.Errorf("rec.Code = %d, want: %d", got, tc.wantCode)
			}
			if got := w.BytesWritten(); got != tc.wantBytes {
				t.Errorf("w.BytesWritten() = %d, want: %d", got, tc.wantBytes)
			}
			if got := rec.Body.String(); got != tc.body {
				t.Errorf("rec.Body.String() = %q, want: %q", got, tc.body)
			}
		})
	}
}

func TestSafeResponseWriter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(ctx, rec)
	if _, err := w.Write([]byte("late")); err == nil {
		t.Errorf("w.Write() = %v, want: %v", err, context.Canceled)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("rec.Body.Len() = %d, want: %d", rec.Body.Len(), 0)
	}
}
