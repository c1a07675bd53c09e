package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/model"
	"github.com/Achawin1998/tours-travel-backend/internal/repository"
)

// TourStore is the persistence surface the tour handlers need.
// *repository.TourRepo satisfies it.
type TourStore interface {
	Create(ctx context.Context, in repository.TourInput) (model.Tour, error)
	Update(ctx context.Context, id uint64, in repository.TourInput) (model.Tour, error)
	Delete(ctx context.Context, id uint64) error
	GetWithReviews(ctx context.Context, id uint64) (model.TourWithReviews, error)
	ListPage(ctx context.Context, page int) ([]model.TourWithReviews, error)
	ListFeatured(ctx context.Context, page int) ([]model.TourWithReviews, error)
	Search(ctx context.Context, q repository.TourSearch) ([]model.TourWithReviews, error)
	Count(ctx context.Context) (int64, error)
}

// TourHandler serves both the public browse endpoints and the admin CRUD
// endpoints for tours.
type TourHandler struct {
	Tours TourStore
}

func NewTourHandler(tours TourStore) *TourHandler {
	return &TourHandler{Tours: tours}
}

type tourReq struct {
	Title        string  `json:"title"`
	City         string  `json:"city"`
	Address      string  `json:"address"`
	Distance     int     `json:"distance"`
	Photo        *string `json:"photo"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	MaxGroupSize int     `json:"maxGroupSize"`
	Featured     bool    `json:"featured"`
}

// bindTour binds and validates the shared tour payload. It returns a
// non-nil error response when validation fails.
func bindTour(c echo.Context) (repository.TourInput, bool, error) {
	var req tourReq
	if err := c.Bind(&req); err != nil {
		return repository.TourInput{}, false, fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.City = strings.TrimSpace(req.City)
	if req.Title == "" || req.City == "" {
		return repository.TourInput{}, false, fail(c, http.StatusBadRequest, "title and city are required")
	}
	if req.Price < 0 {
		return repository.TourInput{}, false, fail(c, http.StatusBadRequest, "price must not be negative")
	}
	if req.MaxGroupSize < 1 {
		return repository.TourInput{}, false, fail(c, http.StatusBadRequest, "maxGroupSize must be at least 1")
	}
	return repository.TourInput{
		Title:        req.Title,
		City:         req.City,
		Address:      strings.TrimSpace(req.Address),
		Distance:     req.Distance,
		Photo:        req.Photo,
		Description:  req.Description,
		Price:        req.Price,
		MaxGroupSize: req.MaxGroupSize,
		Featured:     req.Featured,
	}, true, nil
}

// CreateTour inserts a new tour. Admin only.
func (h *TourHandler) CreateTour(c echo.Context) error {
	in, valid, errResp := bindTour(c)
	if !valid {
		return errResp
	}
	t, err := h.Tours.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to create tour")
	}
	return ok(c, http.StatusCreated, "tour created successfully", t)
}

// UpdateTour overwrites a tour. Admin only.
func (h *TourHandler) UpdateTour(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid tour id")
	}
	in, valid, errResp := bindTour(c)
	if !valid {
		return errResp
	}
	t, err := h.Tours.Update(c.Request().Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "tour not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to update tour")
	}
	return ok(c, http.StatusOK, "tour updated successfully", t)
}

// DeleteTour removes a tour. Tours with reviews are protected; deleting
// one answers 409 so the aggregate is never silently orphaned.
func (h *TourHandler) DeleteTour(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid tour id")
	}
	if err := h.Tours.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fail(c, http.StatusNotFound, "tour not found")
		case errors.Is(err, repository.ErrConflict):
			return fail(c, http.StatusConflict, "tour has reviews and cannot be deleted")
		}
		return fail(c, http.StatusInternalServerError, "failed to delete tour")
	}
	return ok(c, http.StatusOK, "tour deleted successfully", nil)
}

// GetTour returns a single tour with its reviews aggregate.
func (h *TourHandler) GetTour(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid tour id")
	}
	t, err := h.Tours.GetWithReviews(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "tour not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to get tour")
	}
	return ok(c, http.StatusOK, "get single tour successfully", echo.Map{
		"tour":    t.Tour,
		"reviews": t.Reviews,
	})
}

// ListTours returns one page of tours with review aggregates.
func (h *TourHandler) ListTours(c echo.Context) error {
	tours, err := h.Tours.ListPage(c.Request().Context(), queryPage(c))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to fetch tours")
	}
	return okList(c, "tours fetched successfully", len(tours), tours)
}

// SearchTours filters tours by city (case-insensitive partial match),
// minimum distance and minimum group size.
func (h *TourHandler) SearchTours(c echo.Context) error {
	distance, _ := strconv.Atoi(c.QueryParam("distance"))
	groupSize, _ := strconv.Atoi(c.QueryParam("maxGroupSize"))
	q := repository.TourSearch{
		City:         strings.TrimSpace(c.QueryParam("city")),
		MinDistance:  distance,
		MinGroupSize: groupSize,
	}
	tours, err := h.Tours.Search(c.Request().Context(), q)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to search tours")
	}
	return okList(c, "tours fetched successfully", len(tours), tours)
}

// ListFeaturedTours returns one page of featured tours.
func (h *TourHandler) ListFeaturedTours(c echo.Context) error {
	tours, err := h.Tours.ListFeatured(c.Request().Context(), queryPage(c))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to fetch tours")
	}
	return okList(c, "tours fetched successfully", len(tours), tours)
}

// CountTours returns the total number of tours, used by clients to size
// their pagination controls.
func (h *TourHandler) CountTours(c echo.Context) error {
	n, err := h.Tours.Count(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to fetch tour count")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": n})
}
