package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/handler"
	"github.com/Achawin1998/tours-travel-backend/internal/middleware"
)

// RegisterTours registers the tour endpoints. Browsing, search and the
// review submission are public; create/update/delete require an admin
// token. Note the count route lives under /api/tour (singular), matching
// the published API contract.
func RegisterTours(e *echo.Echo, t *handler.TourHandler, r *handler.ReviewHandler, jwtSecret string) {
	admin := []echo.MiddlewareFunc{middleware.Auth(jwtSecret), middleware.RequireAdmin()}

	// ---- Public browse ----
	e.GET("/api/tours", t.ListTours)
	e.GET("/api/tours/:id", t.GetTour)
	e.GET("/api/tours/search/getTourBysearch", t.SearchTours)
	e.GET("/api/tours/search/getFeaturedTours", t.ListFeaturedTours)
	e.GET("/api/tour/search/getTourCount", t.CountTours)

	// ---- Admin CRUD ----
	e.POST("/api/tours", t.CreateTour, admin...)
	e.PUT("/api/tours/:id", t.UpdateTour, admin...)
	e.DELETE("/api/tours/:id", t.DeleteTour, admin...)

	// ---- Reviews ----
	e.POST("/api/review/:tourId", r.CreateReview)
}
