package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/handler"
	"github.com/Achawin1998/tours-travel-backend/internal/middleware"
)

// RegisterUsers registers the user endpoints. The per-id routes require a
// valid token and the handler restricts them to the profile owner or an
// admin; the listing is admin only.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string) {
	auth := middleware.Auth(jwtSecret)

	e.GET("/users/:id", u.GetUser, auth)
	e.PUT("/users/:id", u.UpdateUser, auth)
	e.DELETE("/users/:id", u.DeleteUser, auth)
	e.GET("/users", u.ListUsers, auth, middleware.RequireAdmin())
}
