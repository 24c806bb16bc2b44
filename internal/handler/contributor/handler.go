package contributor

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	contributormodel "github.com/feemjesusbr/backend/internal/model/contributor"
	devotionalservice "github.com/feemjesusbr/backend/internal/service/devotional"
	"github.com/feemjesusbr/backend/pkg/utils"
)

// Handler serves the contributor registry endpoints.
type Handler struct {
	store        contributormodel.Store
	certificates *devotionalservice.Service
}

// New creates the contributor handler.
func New(store contributormodel.Store, certificates *devotionalservice.Service) *Handler {
	return &Handler{store: store, certificates: certificates}
}

// RegisterRoutes mounts the contributor routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contributors", h.handleCreate)
	r.Get("/contributors", h.handleList)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name           string  `json:"name"`
		Email          string  `json:"email"`
		DonationAmount float64 `json:"donationAmount"`
		SpecialMessage string  `json:"specialMessage"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(payload.Name)
	email := strings.TrimSpace(payload.Email)
	if name == "" {
		utils.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if email == "" || !strings.Contains(email, "@") {
		utils.RespondError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	record := contributormodel.Contributor{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		DonationAmount: payload.DonationAmount,
		SpecialMessage: strings.TrimSpace(payload.SpecialMessage),
		CreatedAt:      time.Now().UTC(),
	}

	if err := h.store.Save(r.Context(), record); err != nil {
		log.Printf("[contributor] save failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to save contributor")
		return
	}

	certificate := h.certificates.Certificate(r.Context(), record.Name, record.DonationAmount, record.SpecialMessage)

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"contributor": record,
		"certificate": certificate,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("[contributor] list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list contributors")
		return
	}
	if items == nil {
		items = []contributormodel.Contributor{}
	}
	utils.RespondJSON(w, http.StatusOK, items)
}
