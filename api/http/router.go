package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/handlers"
)

// Routes groups the handlers to mount. Auth, Classifications and the
// middlewares are nil when the service runs without a store.
type Routes struct {
	Health          *handlers.HealthHandler
	Page            *handlers.PageHandler
	Classify        *handlers.ClassifyHandler
	Auth            *handlers.AuthHandler
	Classifications *handlers.ClassificationsHandler

	// AuthMW guards the history endpoints, OptionalAuthMW attaches the caller to uploads.
	AuthMW         fiber.Handler
	OptionalAuthMW fiber.Handler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, r Routes) {
	optional := r.OptionalAuthMW
	if optional == nil {
		optional = func(c *fiber.Ctx) error { return c.Next() }
	}

	app.Get("/", r.Page.Show)
	app.Post("/", optional, r.Page.Submit)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", r.Health.Health)
	v1.Get("/ready", r.Health.Ready)

	v1.Get("/categories", handlers.Categories)

	rg := v1.Group("/resume")
	rg.Post("/classify", optional, r.Classify.Classify)

	if r.Auth != nil {
		a := v1.Group("/auth")
		a.Post("/register", r.Auth.Register)
		a.Post("/login", r.Auth.Login)
	}

	if r.Classifications != nil && r.AuthMW != nil {
		cg := v1.Group("/classifications", r.AuthMW)
		cg.Get("/", r.Classifications.List)
		cg.Get("/:id", r.Classifications.Get)
		cg.Delete("/:id", r.Classifications.Delete)
	}
}
