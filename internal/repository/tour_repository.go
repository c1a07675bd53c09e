package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Achawin1998/tours-travel-backend/internal/model"
)

// PageSize is the fixed number of rows returned by paginated listings.
const PageSize = 8

// TourRepo provides persistence for the `tours` table and the review
// aggregates attached to tour listings.
type TourRepo struct{ DB *sql.DB }

func NewTourRepo(db *sql.DB) *TourRepo { return &TourRepo{DB: db} }

const tourColumns = "id, title, city, address, distance, photo, description, price, max_group_size, featured, created_at, updated_at"

// TourInput carries the writable tour fields shared by create and update.
type TourInput struct {
	Title        string
	City         string
	Address      string
	Distance     int
	Photo        *string
	Description  string
	Price        float64
	MaxGroupSize int
	Featured     bool
}

func scanTour(scan func(dest ...any) error) (model.Tour, error) {
	var t model.Tour
	var photo sql.NullString
	err := scan(&t.ID, &t.Title, &t.City, &t.Address, &t.Distance, &photo,
		&t.Description, &t.Price, &t.MaxGroupSize, &t.Featured, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.Tour{}, err
	}
	if photo.Valid {
		p := photo.String
		t.Photo = &p
	}
	return t, nil
}

// Create inserts a tour and returns the stored row.
func (r *TourRepo) Create(ctx context.Context, in TourInput) (model.Tour, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO tours (title, city, address, distance, photo, description, price, max_group_size, featured)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		in.Title, in.City, in.Address, in.Distance, in.Photo, in.Description,
		in.Price, in.MaxGroupSize, in.Featured)
	if err != nil {
		return model.Tour{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Tour{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update overwrites every writable field of a tour. Returns ErrNotFound
// when the id matches no row.
func (r *TourRepo) Update(ctx context.Context, id uint64, in TourInput) (model.Tour, error) {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE tours SET title = ?, city = ?, address = ?, distance = ?, photo = ?,
		 description = ?, price = ?, max_group_size = ?, featured = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		in.Title, in.City, in.Address, in.Distance, in.Photo, in.Description,
		in.Price, in.MaxGroupSize, in.Featured, id)
	if err != nil {
		return model.Tour{}, err
	}
	// Existence is confirmed by reading the row back; RowsAffected cannot
	// distinguish a missing row from a no-op update.
	return r.GetByID(ctx, id)
}

// Delete removes a tour. Tours that still have reviews cannot be deleted;
// the caller receives ErrConflict and must remove the reviews first.
func (r *TourRepo) Delete(ctx context.Context, id uint64) error {
	var reviews int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tour_reviews WHERE tour_id = ?", id).Scan(&reviews); err != nil {
		return err
	}
	if reviews > 0 {
		return ErrConflict
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM tours WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID fetches a single tour row without its reviews.
func (r *TourRepo) GetByID(ctx context.Context, id uint64) (model.Tour, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+tourColumns+" FROM tours WHERE id = ? LIMIT 1", id)
	t, err := scanTour(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tour{}, ErrNotFound
		}
		return model.Tour{}, err
	}
	return t, nil
}

// GetWithReviews fetches a tour together with its review aggregate.
func (r *TourRepo) GetWithReviews(ctx context.Context, id uint64) (model.TourWithReviews, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return model.TourWithReviews{}, err
	}
	withReviews, err := r.attachReviews(ctx, []model.Tour{t})
	if err != nil {
		return model.TourWithReviews{}, err
	}
	return withReviews[0], nil
}

// ListPage returns one fixed-size page of tours ordered by ascending id,
// each with its review aggregate attached. Page numbering is zero-based.
func (r *TourRepo) ListPage(ctx context.Context, page int) ([]model.TourWithReviews, error) {
	return r.listWhere(ctx, "1=1", nil, page)
}

// ListFeatured returns one page of tours flagged as featured.
func (r *TourRepo) ListFeatured(ctx context.Context, page int) ([]model.TourWithReviews, error) {
	return r.listWhere(ctx, "featured = TRUE", nil, page)
}

// TourSearch defines the filters of the public search endpoint. City is a
// case-insensitive partial match; the numeric fields are minimums.
type TourSearch struct {
	City         string
	MinDistance  int
	MinGroupSize int
}

// Search returns tours matching every supplied filter, with review
// aggregates attached. Search results are not paginated.
func (r *TourRepo) Search(ctx context.Context, q TourSearch) ([]model.TourWithReviews, error) {
	where := []string{}
	args := []any{}

	if q.City != "" {
		where = append(where, "LOWER(city) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.City)+"%")
	}
	if q.MinDistance > 0 {
		where = append(where, "distance >= ?")
		args = append(args, q.MinDistance)
	}
	if q.MinGroupSize > 0 {
		where = append(where, "max_group_size >= ?")
		args = append(args, q.MinGroupSize)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+tourColumns+" FROM tours WHERE "+cond+" ORDER BY id ASC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tours, err := collectTours(rows)
	if err != nil {
		return nil, err
	}
	return r.attachReviews(ctx, tours)
}

// Count returns the total number of tour rows.
func (r *TourRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM tours").Scan(&n)
	return n, err
}

func (r *TourRepo) listWhere(ctx context.Context, cond string, args []any, page int) ([]model.TourWithReviews, error) {
	if page < 0 {
		page = 0
	}
	argsData := append(append([]any{}, args...), PageSize, page*PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+tourColumns+" FROM tours WHERE "+cond+" ORDER BY id ASC LIMIT ? OFFSET ?",
		argsData...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tours, err := collectTours(rows)
	if err != nil {
		return nil, err
	}
	return r.attachReviews(ctx, tours)
}

func collectTours(rows *sql.Rows) ([]model.Tour, error) {
	out := make([]model.Tour, 0, PageSize)
	for rows.Next() {
		t, err := scanTour(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// attachReviews bulk-fetches the reviews for a slice of tours with a
// single IN query and groups them by tour id. Every tour gets a non-nil
// slice so empty aggregates serialize as [].
func (r *TourRepo) attachReviews(ctx context.Context, tours []model.Tour) ([]model.TourWithReviews, error) {
	out := make([]model.TourWithReviews, 0, len(tours))
	if len(tours) == 0 {
		return out, nil
	}

	placeholders := strings.Repeat("?,", len(tours))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(tours))
	for _, t := range tours {
		args = append(args, t.ID)
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, tour_id, username, review_text, rating, created_at
		 FROM tour_reviews WHERE tour_id IN (`+placeholders+`) ORDER BY id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byTour := make(map[uint64][]model.Review, len(tours))
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.TourID, &rv.Username, &rv.ReviewText, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, err
		}
		byTour[rv.TourID] = append(byTour[rv.TourID], rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range tours {
		reviews := byTour[t.ID]
		if reviews == nil {
			reviews = []model.Review{}
		}
		out = append(out, model.TourWithReviews{Tour: t, Reviews: reviews})
	}
	return out, nil
}
