package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/middleware"
	"github.com/Achawin1998/tours-travel-backend/internal/model"
	"github.com/Achawin1998/tours-travel-backend/internal/queue"
	"github.com/Achawin1998/tours-travel-backend/internal/repository"
)

// BookingStore is the persistence surface the booking handlers need.
// *repository.BookingRepo satisfies it.
type BookingStore interface {
	Create(ctx context.Context, in repository.BookingInput) (model.Booking, error)
	GetByID(ctx context.Context, id uint64) (model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
}

// EventPublisher emits booking lifecycle events to the message broker.
// service.BookingEvents satisfies it; publishing is best-effort and a
// failure never fails the request.
type EventPublisher interface {
	BookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// BookingHandler serves booking creation and lookup endpoints.
type BookingHandler struct {
	Bookings BookingStore
	Events   EventPublisher
}

func NewBookingHandler(bookings BookingStore, events EventPublisher) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Events: events}
}

type bookingReq struct {
	UserID    uint64    `json:"userId"`
	UserEmail string    `json:"userEmail"`
	TourName  string    `json:"tourName"`
	FullName  string    `json:"fullName"`
	GuestSize int       `json:"guestSize"`
	Phone     string    `json:"phone"`
	BookAt    time.Time `json:"bookAt"`
}

// CreateBooking stores a booking and emits a booking.created event. Every
// field is required; the endpoint rejects partial submissions instead of
// inserting half-empty rows.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	req.TourName = strings.TrimSpace(req.TourName)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)

	switch {
	case req.UserID == 0:
		return fail(c, http.StatusBadRequest, "userId is required")
	case req.UserEmail == "":
		return fail(c, http.StatusBadRequest, "userEmail is required")
	case req.TourName == "":
		return fail(c, http.StatusBadRequest, "tourName is required")
	case req.FullName == "":
		return fail(c, http.StatusBadRequest, "fullName is required")
	case req.Phone == "":
		return fail(c, http.StatusBadRequest, "phone is required")
	case req.GuestSize < 1:
		return fail(c, http.StatusBadRequest, "guestSize must be at least 1")
	case req.BookAt.IsZero():
		return fail(c, http.StatusBadRequest, "bookAt is required")
	}

	b, err := h.Bookings.Create(c.Request().Context(), repository.BookingInput{
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		TourName:  req.TourName,
		FullName:  req.FullName,
		GuestSize: req.GuestSize,
		Phone:     req.Phone,
		BookAt:    req.BookAt,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to book tour")
	}

	// Best-effort event; the booking is already durable in MySQL.
	_ = h.Events.BookingCreated(c.Request().Context(), queue.BookingCreatedEvent{
		BookingID:   b.ID,
		BookingCode: b.BookingCode,
		UserID:      b.UserID,
		UserEmail:   b.UserEmail,
		TourName:    b.TourName,
		FullName:    b.FullName,
		GuestSize:   b.GuestSize,
		Phone:       b.Phone,
		BookAt:      b.BookAt.UTC().Format(time.RFC3339),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	})

	return ok(c, http.StatusOK, "your tour is booked", b)
}

// GetBooking returns a single booking. Only the booking's owner or an
// admin may read it.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid booking id")
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "booking not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to fetch booking")
	}
	uid, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "you are not authorized")
	}
	if b.UserID != uid && !middleware.IsAdmin(c) {
		return fail(c, http.StatusForbidden, "you may only view your own bookings")
	}
	return ok(c, http.StatusOK, "successful", b)
}

// ListBookings returns every booking. Admin only.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to fetch bookings")
	}
	return okList(c, "successful", len(bookings), bookings)
}
