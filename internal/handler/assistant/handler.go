package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	assistantservice "github.com/feemjesusbr/backend/internal/service/assistant"
	"github.com/feemjesusbr/backend/pkg/utils"
)

// Handler serves the AI assistant endpoints.
type Handler struct {
	assistant *assistantservice.Service
}

// New creates the assistant handler.
func New(assistant *assistantservice.Service) *Handler {
	return &Handler{assistant: assistant}
}

// RegisterRoutes mounts the assistant routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ai-assistant", h.handleRespond)
	r.Post("/ai-prayer/generate", h.handlePrayer)
}

func (h *Handler) handleRespond(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	if strings.EqualFold(payload.Type, "prayer") {
		utils.RespondJSON(w, http.StatusOK, h.assistant.Pray(r.Context(), payload.Message))
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.assistant.Respond(r.Context(), payload.Message))
}

func (h *Handler) handlePrayer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID      string `json:"userId"`
		UserMessage string `json:"userMessage"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.UserMessage) == "" {
		utils.RespondError(w, http.StatusBadRequest, "userMessage is required")
		return
	}

	reply := h.assistant.Pray(r.Context(), payload.UserMessage)
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"aiResponse": reply.Response,
		"verse":      reply.Verse,
		"reference":  reply.Reference,
	})
}
