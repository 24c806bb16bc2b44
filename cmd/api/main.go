package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/feemjesusbr/backend/internal/config"
	"github.com/feemjesusbr/backend/internal/handler"
	contributormodel "github.com/feemjesusbr/backend/internal/model/contributor"
	"github.com/feemjesusbr/backend/internal/service/ai"
	"github.com/feemjesusbr/backend/internal/service/assistant"
	"github.com/feemjesusbr/backend/internal/service/devotional"
	verseservice "github.com/feemjesusbr/backend/internal/service/verse"
	"github.com/feemjesusbr/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Remote verse providers, in priority order. Providers without the
	// required credentials are skipped, never fatal.
	var providers []verseservice.Provider
	if cfg.Providers.BibleAPIEnabled {
		providers = append(providers, verseservice.NewBibleAPI(cfg.Providers.BibleAPIURL, cfg.Providers.BibleAPITranslation, cfg.Providers.Timeout))
	}
	if cfg.Providers.ABibliaDigitalToken != "" {
		providers = append(providers, verseservice.NewABibliaDigital(cfg.Providers.ABibliaDigitalURL, cfg.Providers.ABibliaDigitalToken, cfg.Providers.Timeout))
	} else {
		log.Println("abibliadigital token not configured, provider skipped")
	}
	verses := verseservice.NewService(providers)
	log.Printf("verse resolver initialized with %d remote provider(s)", len(providers))

	// Initialize AI service
	var aiService *ai.Service
	if cfg.AI.Enabled() {
		aiService, err = ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing with curated content only")
		} else {
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("AI credentials not configured, serving curated content only")
	}

	var assistantLLM assistant.TextGenerator
	var devotionalLLM devotional.TextGenerator
	if aiService != nil {
		assistantLLM = aiService
		devotionalLLM = aiService
	}

	assistantSvc := assistant.NewService(assistantLLM, verses)
	devotionalSvc := devotional.NewService(devotionalLLM, verses)

	// Contributor registry: SQLite when a path is configured, otherwise
	// in-memory.
	var contributors contributormodel.Store
	if cfg.Storage.SQLitePath != "" {
		sqliteStore, err := store.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Printf("warning: failed to open contributor database: %v", err)
			log.Println("falling back to in-memory contributor store")
			contributors = contributormodel.NewMemoryStore()
		} else {
			defer sqliteStore.Close()
			contributors = sqliteStore
			log.Printf("contributor database opened at %s", cfg.Storage.SQLitePath)
		}
	} else {
		contributors = contributormodel.NewMemoryStore()
		log.Println("no contributor database configured, using in-memory store")
	}

	router := handler.NewRouter(verses, assistantSvc, devotionalSvc, contributors)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Fé em Jesus BR backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
