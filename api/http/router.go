package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/ragguard/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. adminMW guards prompt administration.
func Register(app *fiber.App, health *handlers.HealthHandler, gate *handlers.GatekeeperHandler, prompts *handlers.PromptHandler, adminMW ...fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Gatekeeper stages called by the RAG pipeline
	v1.Post("/filter", gate.Filter)
	v1.Post("/relevance", gate.Relevance)

	p := v1.Group("/prompts", adminMW...)
	p.Get("/:name", prompts.Get)
	p.Put("/:name", prompts.Put)
	p.Delete("/:name", prompts.Delete)
}
