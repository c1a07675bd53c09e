package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/config"
	"github.com/Achawin1998/tours-travel-backend/internal/middleware"
	"github.com/Achawin1998/tours-travel-backend/internal/repository"
)

// UserHandler serves the self-service profile endpoints and the admin
// user listing. It shares the UserStore interface with AuthHandler.
type UserHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewUserHandler(cfg config.Config, users UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

type userUpdateReq struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Photo    *string `json:"photo"`
}

// mayAccess reports whether the authenticated identity may operate on the
// user record with the given id: the user themselves, or an admin.
func mayAccess(c echo.Context, id uint64) bool {
	uid, err := middleware.CurrentUserID(c)
	if err != nil {
		return false
	}
	return uid == id || middleware.IsAdmin(c)
}

// GetUser returns a single user row.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	if !mayAccess(c, id) {
		return fail(c, http.StatusForbidden, "you may only view your own profile")
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "user not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to fetch user")
	}
	return ok(c, http.StatusOK, "user found", u)
}

// UpdateUser applies a profile update. Username and email are required;
// password and photo are only written when supplied.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	if !mayAccess(c, id) {
		return fail(c, http.StatusForbidden, "you may only update your own profile")
	}
	var req userUpdateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" {
		return fail(c, http.StatusBadRequest, "username and email are required")
	}

	update := repository.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Photo:    req.Photo,
	}
	if req.Password != "" {
		update.Password = &req.Password
	}

	u, err := h.Users.Update(c.Request().Context(), id, update, h.Cfg.BcryptCost)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fail(c, http.StatusNotFound, "user not found")
		case errors.Is(err, repository.ErrDuplicate):
			return fail(c, http.StatusInternalServerError, "failed to update user: email or username already exists")
		}
		return fail(c, http.StatusInternalServerError, "failed to update user")
	}
	return ok(c, http.StatusOK, "user updated successfully", u)
}

// DeleteUser removes a user account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	if !mayAccess(c, id) {
		return fail(c, http.StatusForbidden, "you may only delete your own profile")
	}
	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "user not found")
		}
		return fail(c, http.StatusInternalServerError, "failed to delete user")
	}
	return ok(c, http.StatusOK, "user deleted successfully", nil)
}

// ListUsers returns every user. Admin only.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to fetch users")
	}
	return okList(c, "users fetched successfully", len(users), users)
}
