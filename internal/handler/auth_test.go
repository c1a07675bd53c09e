package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/Achawin1998/tours-travel-backend/internal/config"
	"github.com/Achawin1998/tours-travel-backend/internal/middleware"
	"github.com/Achawin1998/tours-travel-backend/internal/model"
	"github.com/Achawin1998/tours-travel-backend/internal/repository"
	"github.com/Achawin1998/tours-travel-backend/internal/utils"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "handler-test-secret", TokenTTLDays: 7, BcryptCost: 4}
}

func TestRegisterSuccess(t *testing.T) {
	store := fakeUserStore{
		createFn: func(_ context.Context, username, email, _ string, _ int) (model.User, error) {
			return model.User{ID: 1, Username: username, Email: email, Role: model.RoleUser}, nil
		},
	}
	h := NewAuthHandler(testConfig(), store)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice", "email": "Alice@Example.com", "password": "pw"})
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["email"] != "alice@example.com" {
		t.Fatalf("email = %v, want normalized alice@example.com", data["email"])
	}
	if _, leaked := data["password_hash"]; leaked {
		t.Fatal("password hash must not be serialized")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	h := NewAuthHandler(testConfig(), fakeUserStore{})
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "a@b.c"})
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	store := fakeUserStore{
		createFn: func(context.Context, string, string, string, int) (model.User, error) {
			return model.User{}, repository.ErrDuplicate
		},
	}
	h := NewAuthHandler(testConfig(), store)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice", "email": "a@b.c", "password": "pw"})
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := decodeBody(t, rec); body["success"] != false {
		t.Fatal("duplicate registration must not report success")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	h := NewAuthHandler(testConfig(), fakeUserStore{})
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "nobody@example.com", "password": "pw"})
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct", 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store := fakeUserStore{
		getByEmailFn: func(context.Context, string) (model.User, error) {
			return model.User{ID: 5, Email: "a@b.c", PasswordHash: hash, Role: model.RoleUser}, nil
		},
	}
	h := NewAuthHandler(testConfig(), store)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "a@b.c", "password": "wrong"})
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoginSuccessIssuesCookieAndToken(t *testing.T) {
	hash, err := utils.HashPassword("correct", 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store := fakeUserStore{
		getByEmailFn: func(context.Context, string) (model.User, error) {
			return model.User{ID: 5, Email: "a@b.c", PasswordHash: hash, Role: model.RoleAdmin}, nil
		},
	}
	cfg := testConfig()
	h := NewAuthHandler(cfg, store)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "a@b.c", "password": "correct"})
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.AccessTokenCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatal("login must set the accessToken cookie")
	}
	if !cookie.HttpOnly {
		t.Fatal("accessToken cookie must be HTTP-only")
	}
	if cookie.Expires.IsZero() {
		t.Fatal("accessToken cookie must carry an absolute expiry")
	}

	claims, err := utils.ParseAccessToken(cfg.JWTSecret, cookie.Value)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != 5 || claims.Role != model.RoleAdmin {
		t.Fatalf("claims = %+v, want id 5 role admin", claims)
	}

	body := decodeBody(t, rec)
	if body["token"] != cookie.Value {
		t.Fatal("response body token must match the cookie value")
	}
}
