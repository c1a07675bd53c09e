package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication and
// do not belong to a resource: the smoke-test root and the health check
// used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the registration and login endpoints under
// /api/auth. Neither requires an existing session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}
