package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/repository"
)

// ReviewStore is the persistence surface the review handler needs.
// *repository.ReviewRepo satisfies it.
type ReviewStore interface {
	Create(ctx context.Context, tourID uint64, username, reviewText string, rating int) (uint64, error)
}

// ReviewHandler serves the unauthenticated review submission endpoint.
type ReviewHandler struct {
	Reviews ReviewStore
}

func NewReviewHandler(reviews ReviewStore) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

type reviewReq struct {
	Username   string `json:"username"`
	ReviewText string `json:"review_text"`
	Rating     int    `json:"rating"`
}

// CreateReview stores a review against a tour. Validation failures get
// field-specific messages so the review form can show them inline.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	tourID, err := pathID(c, "tourId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid tour id")
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.ReviewText = strings.TrimSpace(req.ReviewText)

	if req.Username == "" && req.ReviewText == "" && req.Rating == 0 {
		return fail(c, http.StatusBadRequest, "all fields are required")
	}
	if req.Username == "" {
		return fail(c, http.StatusBadRequest, "please provide a username before submitting")
	}
	if req.ReviewText == "" {
		return fail(c, http.StatusBadRequest, "please fill out a message before submitting")
	}
	if req.Rating == 0 {
		return fail(c, http.StatusBadRequest, "please select a rating before submitting")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fail(c, http.StatusBadRequest, "rating must be between 1 and 5")
	}

	id, err := h.Reviews.Create(c.Request().Context(), tourID, req.Username, req.ReviewText, req.Rating)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "tour not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to submit review")
	}
	return ok(c, http.StatusOK, "review submitted", echo.Map{"id": id})
}
