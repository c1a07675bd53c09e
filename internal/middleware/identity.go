package middleware

// identity.go defines helpers for reading the authenticated identity that
// the Auth guard stored in the Echo context. Handlers use these instead of
// poking at c.Get directly so the context keys stay private to this
// package.

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/model"
)

// ErrNoIdentity is returned when no authenticated user is attached to the
// request context, which means a handler was reached without the Auth guard.
var ErrNoIdentity = errors.New("no authenticated identity in context")

// CurrentUserID extracts the authenticated user's ID from the context.
func CurrentUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, ErrNoIdentity
}

// CurrentRole returns the authenticated user's role, or the empty string
// when no identity is present.
func CurrentRole(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}

// IsAdmin reports whether the authenticated identity carries the admin role.
func IsAdmin(c echo.Context) bool {
	return CurrentRole(c) == model.RoleAdmin
}
