package repository

import (
	"context"
	"database/sql"
	"strings"
)

// ReviewRepo provides persistence for the `tour_reviews` table.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// Create inserts a review for a tour and returns the generated id. A
// foreign-key violation (the tour does not exist) is reported as
// ErrNotFound so the handler can answer 404 instead of a bare 500.
func (r *ReviewRepo) Create(ctx context.Context, tourID uint64, username, reviewText string, rating int) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO tour_reviews (tour_id, username, review_text, rating) VALUES (?,?,?,?)",
		tourID, username, reviewText, rating)
	if err != nil {
		// MySQL error 1452: cannot add or update a child row (FK fails).
		if strings.Contains(strings.ToLower(err.Error()), "1452") {
			return 0, ErrNotFound
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
