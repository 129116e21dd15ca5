package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hablapp/internal/dispatch"
	"hablapp/internal/log"
)

type dispatchRequest struct {
	Intent   string            `json:"intent"`
	Entities []dispatch.Entity `json:"entities"`
}

type interpretRequest struct {
	Text string `json:"text"`
}

type interpretResponse struct {
	Intent   string            `json:"intent"`
	Entities []dispatch.Entity `json:"entities"`
	Result   dispatch.Result   `json:"result"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "Método no permitido")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDispatch executes an already-classified command.
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "Método no permitido")
		return
	}

	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if req.Entities == nil {
		req.Entities = []dispatch.Entity{}
	}

	result := s.assistant.Dispatch(req.Intent, req.Entities)
	writeJSON(w, http.StatusOK, result)
}

// handleInterpret classifies raw transcribed text and executes the
// resulting command in one round trip.
func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "Método no permitido")
		return
	}
	if s.interpreter == nil {
		writeError(w, r, http.StatusServiceUnavailable, "El clasificador no está configurado")
		return
	}

	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if req.Text == "" {
		writeError(w, r, http.StatusBadRequest, "El texto no puede estar vacío")
		return
	}

	classification, err := s.interpreter.Classify(r.Context(), req.Text)
	if err != nil {
		slog.ErrorContext(r.Context(), "classification failed",
			log.FieldError, err,
			log.FieldComponent, log.ComponentHTTP)
		writeError(w, r, http.StatusBadGateway, "No se pudo interpretar la frase")
		return
	}

	result := s.assistant.Dispatch(classification.Intent, classification.Entities)
	writeJSON(w, http.StatusOK, interpretResponse{
		Intent:   classification.Intent,
		Entities: classification.Entities,
		Result:   result,
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "Método no permitido")
		return
	}
	writeJSON(w, http.StatusOK, s.assistant.Snapshot())
}
