package app

import (
	"net/http"
	"time"

	"github.com/ferdiebergado/notes/internal/pkg/message"
	"github.com/ferdiebergado/notes/internal/pkg/web"
)

const statusHealthy = "healthy"

type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func handleIndex(version string) http.HandlerFunc {
	payload := &IndexResponse{
		Message: message.ServiceDescription,
		Version: version,
		Endpoints: map[string]string{
			"health":      pathHealth,
			"metrics":     pathMetrics,
			"notes":       pathNotes,
			"create_note": http.MethodPost + " " + pathNotes,
			"get_note":    http.MethodGet + " " + pathNote,
			"update_note": http.MethodPut + " " + pathNote,
			"delete_note": http.MethodDelete + " " + pathNote,
		},
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		web.RespondOK(w, payload)
	}
}

// handleHealth reports liveness only. It does not touch the database.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	web.RespondOK(w, &HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC(),
	})
}
