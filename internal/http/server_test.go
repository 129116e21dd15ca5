package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hablapp/internal/classifier"
	"hablapp/internal/dispatch"
	"hablapp/internal/services"
	"hablapp/internal/state"
)

type stubInterpreter struct {
	classification classifier.Classification
	err            error
}

func (s *stubInterpreter) Classify(_ context.Context, _ string) (classifier.Classification, error) {
	return s.classification, s.err
}

func newTestServer(t *testing.T, interp Interpreter) *Server {
	t.Helper()
	assistant := services.NewAssistant(state.New("transactions"), nil)
	return NewServer(":0", assistant, interp)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, nil)
	defer srv.rateLimiter.stop()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestHandleDispatch(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		body        string
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "navigate to known tab",
			method:      http.MethodPost,
			body:        `{"intent":"NavegacionPestana","entities":[{"category":"pestana","text":"presupuestos"}]}`,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Navegando a la pestaña presupuestos",
		},
		{
			name:        "unknown intent",
			method:      http.MethodPost,
			body:        `{"intent":"BailarSalsa","entities":[]}`,
			wantStatus:  http.StatusOK,
			wantSuccess: false,
			wantMessage: `No se reconoció la acción "BailarSalsa"`,
		},
		{
			name:       "invalid json",
			method:     http.MethodPost,
			body:       `{not-json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			body:       "",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, nil)
			defer srv.rateLimiter.stop()

			req := httptest.NewRequest(tt.method, "/api/assistant/dispatch", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantMessage == "" {
				return
			}

			var result dispatch.Result
			if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode result: %v", err)
			}
			if result.Success != tt.wantSuccess {
				t.Errorf("expected success=%v, got %v", tt.wantSuccess, result.Success)
			}
			if result.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, result.Message)
			}
		})
	}
}

func TestHandleInterpret(t *testing.T) {
	interp := &stubInterpreter{
		classification: classifier.Classification{
			Intent: "NavegacionPestana",
			Entities: []dispatch.Entity{
				{Category: "pestana", Text: "recordatorios"},
			},
		},
	}
	srv := newTestServer(t, interp)
	defer srv.rateLimiter.stop()

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/interpret",
		strings.NewReader(`{"text":"llévame a los recordatorios"}`))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp interpretResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Intent != "NavegacionPestana" {
		t.Errorf("expected intent NavegacionPestana, got %q", resp.Intent)
	}
	if !resp.Result.Success {
		t.Errorf("expected successful result, got %q", resp.Result.Message)
	}
	if resp.Result.Message != "Navegando a la pestaña recordatorios" {
		t.Errorf("unexpected message %q", resp.Result.Message)
	}
}

func TestHandleInterpret_NoClassifier(t *testing.T) {
	srv := newTestServer(t, nil)
	defer srv.rateLimiter.stop()

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/interpret",
		strings.NewReader(`{"text":"hola"}`))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	id, _ := body["request_id"].(string)
	if !strings.HasPrefix(id, "req_") {
		t.Errorf("error response should carry the request id, got %q", id)
	}
}

func TestHandleInterpret_ClassifierError(t *testing.T) {
	srv := newTestServer(t, &stubInterpreter{err: errors.New("quota exceeded")})
	defer srv.rateLimiter.stop()

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/interpret",
		strings.NewReader(`{"text":"hola"}`))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
}

func TestHandleInterpret_EmptyText(t *testing.T) {
	srv := newTestServer(t, &stubInterpreter{})
	defer srv.rateLimiter.stop()

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/interpret",
		strings.NewReader(`{"text":""}`))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleState(t *testing.T) {
	srv := newTestServer(t, nil)
	defer srv.rateLimiter.stop()

	req := httptest.NewRequest(http.MethodGet, "/api/assistant/state", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var snapshot state.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snapshot); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snapshot.ActiveTab != "transactions" {
		t.Errorf("expected active tab transactions, got %q", snapshot.ActiveTab)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < 60; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should have been allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("request 61 should have been rejected")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("a different client should not be affected")
	}
}
