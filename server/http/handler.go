package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxRequestBytes = 1 << 20

// Responder is the online core behind the chat endpoint.
type Responder interface {
	Respond(ctx context.Context, message string, vector []float32) (string, error)
}

type chatRequest struct {
	Message string    `json:"message"`
	Vector  []float32 `json:"vector,omitempty"`
}

type chatResponse struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

type handler struct {
	responder Responder
	records   int
}

func (h *handler) chat(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.NewString()

	var req chatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "invalid chat request", "request_id", requestId, "error", err)
		writeJSON(w, http.StatusBadRequest, chatResponse{Error: "Message required."})
		return
	}

	if len(strings.TrimSpace(req.Message)) == 0 {
		writeJSON(w, http.StatusBadRequest, chatResponse{Error: "Message required."})
		return
	}

	reply, err := h.responder.Respond(r.Context(), req.Message, req.Vector)
	if err != nil {
		slog.ErrorContext(r.Context(), "chat request failed", "request_id", requestId, "error", err)
		writeJSON(w, http.StatusInternalServerError, chatResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "records": h.records})
}

// NewRouter serves POST /api/chat and GET /healthz. records is reported by
// the health check.
func NewRouter(responder Responder, records int) *mux.Router {
	h := &handler{
		responder: responder,
		records:   records,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/chat", h.chat).Methods(http.MethodPost)
	router.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
