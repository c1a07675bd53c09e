package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Achawin1998/tours-travel-backend/internal/model"
	"github.com/Achawin1998/tours-travel-backend/internal/utils"
)

// UserRepo provides persistence for the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id, username, email, password_hash, role, photo, created_at, updated_at"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var photo sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &photo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, err
	}
	if photo.Valid {
		p := photo.String
		u.Photo = &p
	}
	return u, nil
}

// isDuplicate reports whether err is a MySQL unique-constraint violation
// (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// Create hashes the password, inserts the user with the default role and
// returns the stored row. Email is normalized to lower case before
// insertion so the unique index is effectively case-insensitive.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, role) VALUES (?,?,?,?)",
		username, email, hash, model.RoleUser)
	if err != nil {
		if isDuplicate(err) {
			return model.User{}, ErrDuplicate
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email)
	return scanUser(row)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
	return scanUser(row)
}

// UserUpdate carries the self-service profile fields. Password and Photo
// are optional; nil leaves the stored value untouched.
type UserUpdate struct {
	Username string
	Email    string
	Password *string
	Photo    *string
}

// Update applies a profile update and returns the stored row. The SET
// clause is assembled dynamically so optional fields are only written
// when provided. Returns ErrNotFound when the id matches no user and
// ErrDuplicate when the new username or email is already taken.
func (r *UserRepo) Update(ctx context.Context, id uint64, p UserUpdate, cost int) (model.User, error) {
	set := []string{"username = ?", "email = ?"}
	args := []any{strings.TrimSpace(p.Username), strings.ToLower(strings.TrimSpace(p.Email))}

	if p.Password != nil {
		hash, err := utils.HashPassword(*p.Password, cost)
		if err != nil {
			return model.User{}, err
		}
		set = append(set, "password_hash = ?")
		args = append(args, hash)
	}
	if p.Photo != nil {
		set = append(set, "photo = ?")
		args = append(args, *p.Photo)
	}
	set = append(set, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if isDuplicate(err) {
			return model.User{}, ErrDuplicate
		}
		return model.User{}, err
	}
	// RowsAffected is zero both for a missing row and for a no-op update,
	// so existence is confirmed by reading the row back.
	return r.GetByID(ctx, id)
}

// Delete removes a user by id. Returns ErrNotFound when no row matched.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
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

// List returns every user ordered by id. Admin-only; there is no
// pagination on this endpoint.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		var photo sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &photo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		if photo.Valid {
			p := photo.String
			u.Photo = &p
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
