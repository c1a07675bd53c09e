package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Achawin1998/tours-travel-backend/internal/model"
)

// BookingRepo provides persistence for the `bookings` table.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id, booking_code, user_id, user_email, tour_name, full_name, guest_size, phone, book_at, created_at"

// BookingInput carries the fields a client supplies when booking a tour.
// The owning user id comes from the request body, matching the public
// contract; reads are still restricted to that user or an admin.
type BookingInput struct {
	UserID    uint64
	UserEmail string
	TourName  string
	FullName  string
	GuestSize int
	Phone     string
	BookAt    time.Time
}

// Create inserts a booking with a freshly generated confirmation code and
// returns the stored row, including timestamps.
func (r *BookingRepo) Create(ctx context.Context, in BookingInput) (model.Booking, error) {
	code := uuid.NewString()
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings (booking_code, user_id, user_email, tour_name, full_name, guest_size, phone, book_at)
		 VALUES (?,?,?,?,?,?,?,?)`,
		code, in.UserID, in.UserEmail, in.TourName, in.FullName, in.GuestSize, in.Phone, in.BookAt.UTC())
	if err != nil {
		return model.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a booking by id. Returns ErrNotFound when absent.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id = ? LIMIT 1", id).
		Scan(&b.ID, &b.BookingCode, &b.UserID, &b.UserEmail, &b.TourName,
			&b.FullName, &b.GuestSize, &b.Phone, &b.BookAt, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

// List returns every booking ordered by id. Admin-only.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.BookingCode, &b.UserID, &b.UserEmail, &b.TourName,
			&b.FullName, &b.GuestSize, &b.Phone, &b.BookAt, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
