package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/handler"
	"github.com/Achawin1998/tours-travel-backend/internal/middleware"
)

// RegisterBookings registers the booking endpoints. Creation is open (the
// booking form runs before login on the storefront); reads require a
// valid token, with the handler enforcing owner-or-admin access, and the
// full listing is admin only.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	auth := middleware.Auth(jwtSecret)

	e.POST("/api/booking", b.CreateBooking)
	e.GET("/api/booking/:id", b.GetBooking, auth)
	e.GET("/api/booking", b.ListBookings, auth, middleware.RequireAdmin())
}
