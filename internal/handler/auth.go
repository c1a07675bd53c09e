package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/config"
	"github.com/Achawin1998/tours-travel-backend/internal/middleware"
	"github.com/Achawin1998/tours-travel-backend/internal/model"
	"github.com/Achawin1998/tours-travel-backend/internal/repository"
	"github.com/Achawin1998/tours-travel-backend/internal/utils"
)

// UserStore is the persistence surface the auth and user handlers need.
// *repository.UserRepo satisfies it; tests substitute fakes.
type UserStore interface {
	Create(ctx context.Context, username, email, password string, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	Update(ctx context.Context, id uint64, p repository.UserUpdate, cost int) (model.User, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.User, error)
}

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user account with the default role. The stored row
// is echoed back without the password digest.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "username, email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, req.Username, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusInternalServerError, "failed to create user: email or username already exists")
		}
		return fail(c, http.StatusInternalServerError, "failed to create user")
	}
	return ok(c, http.StatusCreated, "user created successfully", u)
}

// Login verifies credentials and issues the access token. The token is
// set as an HTTP-only cookie whose Expires matches the token's own
// expiry, and is also echoed in the response body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "user not found")
		}
		return fail(c, http.StatusInternalServerError, "login failed")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusBadRequest, "invalid password")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.TokenTTLDays)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to issue token")
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    access.Token,
		Path:     "/",
		Expires:  access.Exp,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "login successful",
		"token":   access.Token,
		"data":    u,
	})
}
