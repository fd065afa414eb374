// @title         ragguard API
// @version       1.0
// @description   Semantic gatekeeper for the Pemko Medan RAG pipeline: pre-retrieval question filter and post-retrieval relevance check.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin token. Accepts "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/ragguard/docs"

	// internal imports
	"github.com/artem13815/ragguard/api/http"
	"github.com/artem13815/ragguard/api/http/handlers"
	"github.com/artem13815/ragguard/pkg/config"
	"github.com/artem13815/ragguard/pkg/filter"
	"github.com/artem13815/ragguard/pkg/hardfilter"
	"github.com/artem13815/ragguard/pkg/health"
	"github.com/artem13815/ragguard/pkg/logger"
	"github.com/artem13815/ragguard/pkg/prompt"
	"github.com/artem13815/ragguard/pkg/relevance"
	"github.com/artem13815/ragguard/pkg/security/jwt"
)

func main() {
	// Load configuration from env/.env and optional CONFIG_FILE
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Prompt store backend plus its readiness checks
	store, checkers, closeStore, err := openPromptStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("open prompt store", "backend", cfg.PromptStore, "error", err)
	}
	defer closeStore()

	model, err := newChatModel(cfg.LLM)
	if err != nil {
		// The gatekeeper still runs; both stages fail open without a model.
		log.Error("llm transport unavailable", "provider", cfg.LLM.Provider, "error", err)
		model = nil
	}

	// Wire dependencies (Clean Architecture)
	resolver := prompt.NewResolver(store, log)
	hard := hardfilter.New(hardfilter.Rules{
		MinChars: cfg.HardFilter.MinChars,
		MinWords: cfg.HardFilter.MinWords,
		Banned:   cfg.HardFilter.Banned,
	})
	filterUC := filter.NewService(hard, resolver, model, cfg.LLM.Model, cfg.LLM.Timeout(), log)
	relevanceUC := relevance.NewService(resolver, model, cfg.LLM.Model, cfg.LLM.Timeout(), log)

	healthHandler := handlers.NewHealthHandler(health.NewService(checkers...), cfg.PromptStore)
	gateHandler := handlers.NewGatekeeperHandler(filterUC, relevanceUC)
	promptHandler := handlers.NewPromptHandler(store, map[string]string{
		prompt.KeyPreFilter: filter.DefaultPrompt,
		prompt.KeyRelevance: relevance.DefaultPrompt,
	})

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty: prompt administration is disabled and rejects every request")
	}
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	app := fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true})
	app.Use(handlers.RequestLogger(log))

	// Register routes
	http.Register(app, healthHandler, gateHandler, promptHandler, authMW, jwt.RequireAdmin())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("HTTP server listening", "port", cfg.Port, "prompt_store", cfg.PromptStore, "llm_provider", cfg.LLM.Provider)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
