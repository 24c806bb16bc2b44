package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	assistantHandler "github.com/feemjesusbr/backend/internal/handler/assistant"
	contributorHandler "github.com/feemjesusbr/backend/internal/handler/contributor"
	devotionalHandler "github.com/feemjesusbr/backend/internal/handler/devotional"
	verseHandler "github.com/feemjesusbr/backend/internal/handler/verse"
	contributorModel "github.com/feemjesusbr/backend/internal/model/contributor"
	assistantService "github.com/feemjesusbr/backend/internal/service/assistant"
	devotionalService "github.com/feemjesusbr/backend/internal/service/devotional"
	verseService "github.com/feemjesusbr/backend/internal/service/verse"
	"github.com/feemjesusbr/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(verses *verseService.Service, assistant *assistantService.Service, devotionals *devotionalService.Service, contributors contributorModel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		verseHandler.New(verses).RegisterRoutes(api)
		assistantHandler.New(assistant).RegisterRoutes(api)
		devotionalHandler.New(devotionals).RegisterRoutes(api)
		contributorHandler.New(contributors, devotionals).RegisterRoutes(api)
	})

	return r
}
