package verse

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	verseservice "github.com/feemjesusbr/backend/internal/service/verse"
	"github.com/feemjesusbr/backend/pkg/utils"
)

// Handler serves the verse endpoints.
type Handler struct {
	resolver *verseservice.Service
}

// New creates the verse handler.
func New(resolver *verseservice.Service) *Handler {
	return &Handler{resolver: resolver}
}

// RegisterRoutes mounts the verse routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/verses/daily", h.handleDaily)
	r.Get("/verses/new", h.handleNew)
	r.Get("/verses/emotion/{emotion}", h.handleForEmotion)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.resolver.Daily())
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.resolver.Random(r.Context()))
}

func (h *Handler) handleForEmotion(w http.ResponseWriter, r *http.Request) {
	emotionLabel := chi.URLParam(r, "emotion")
	if emotionLabel == "" {
		utils.RespondError(w, http.StatusBadRequest, "emotion is required")
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.resolver.ForEmotion(emotionLabel))
}
