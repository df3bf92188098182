package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fiskfix/workorder-service/internal/api/http/handlers"
	"github.com/fiskfix/workorder-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	WorkOrders     *handlers.WorkOrdersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	orders := api.Group("/workorders", cfg.AuthMiddleware.Handle)
	orders.Post("/", cfg.WorkOrders.Create)
	orders.Get("/mine", cfg.WorkOrders.ListMine)
	orders.Get("/all", auth.RequireElevated(), cfg.WorkOrders.ListAll)
	orders.Put("/:id", auth.RequireElevated(), cfg.WorkOrders.UpdateStatus)
}
