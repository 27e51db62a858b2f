package web

import "github.com/gofiber/fiber/v3"

// RegisterRoutes attaches every API endpoint to app. The server binary and
// the tests share this wiring.
func RegisterRoutes(app *fiber.App, h *APIHandlers) {
	w := app.Group("/workflows")
	w.Post("/generate", h.GenerateWorkflow)
	w.Post("/search", h.SearchWorkflows)
	w.Post("/validate", h.ValidateWorkflow)
	w.Post("/generate-and-publish", h.GenerateAndPublish)

	n := app.Group("/nodes")
	n.Get("/", h.ListNodes)
	n.Get("/:type", h.GetNode)

	r := app.Group("/runtime")
	r.Post("/publish", h.PublishWorkflow)
	r.Get("/workflows", h.ListRuntimeWorkflows)
	r.Post("/workflows/:id/activate", h.ActivateRuntimeWorkflow)
	r.Post("/workflows/:id/deactivate", h.DeactivateRuntimeWorkflow)
	r.Delete("/workflows/:id", h.DeleteRuntimeWorkflow)
	r.Post("/workflows/:id/test", h.TestRuntimeWorkflow)

	app.Get("/health", h.HealthCheck)
	app.Get("/stats", h.Stats)
}
