package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/robot-coder/converse-craft/internal/llm"
	"github.com/robot-coder/converse-craft/internal/models"
)

type ChatHandler struct {
	registry *llm.Registry
}

func NewChatHandler(registry *llm.Registry) *ChatHandler {
	return &ChatHandler{registry: registry}
}

// Chat forwards the replayed message history to the requested model and
// returns the generated text. The upstream call is synchronous; the request
// blocks until the client returns.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	if req.ModelName == "" {
		req.ModelName = models.DefaultModel
	}

	client, ok := h.registry.Get(req.ModelName)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.DetailResponse{
			Detail: fmt.Sprintf("Model '%s' not supported.", req.ModelName),
		})
		return
	}

	reply, err := client.Chat(r.Context(), req.Prompt())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
