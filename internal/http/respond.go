package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hablapp/internal/log"
	"hablapp/internal/middleware/trace"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", log.FieldError, err)
	}
}

// writeError carries the request id so a client-reported failure can be
// matched against the trace log.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := map[string]any{
		"success": false,
		"message": message,
	}
	if id := trace.GetRequestID(r.Context()); id != "" {
		body[log.FieldRequestID] = id
	}
	writeJSON(w, status, body)
}
