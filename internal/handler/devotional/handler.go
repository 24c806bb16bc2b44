package devotional

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	devotionalservice "github.com/feemjesusbr/backend/internal/service/devotional"
	"github.com/feemjesusbr/backend/pkg/utils"
)

// Handler serves the devotional generation endpoint.
type Handler struct {
	devotionals *devotionalservice.Service
}

// New creates the devotional handler.
func New(devotionals *devotionalservice.Service) *Handler {
	return &Handler{devotionals: devotionals}
}

// RegisterRoutes mounts the devotional routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/emotions/generate-devotional", h.handleGenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Emotion   string `json:"emotion"`
		Intensity int    `json:"intensity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(payload.Emotion) == "" {
		utils.RespondError(w, http.StatusBadRequest, "emotion is required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.devotionals.Devotional(r.Context(), payload.Emotion, payload.Intensity))
}
