package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/repository"
)

func reviewContext(t *testing.T, body map[string]any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	ctx, rec := newTestContext(t, http.MethodPost, "/api/review/3", body)
	ctx.SetParamNames("tourId")
	ctx.SetParamValues("3")
	return ctx, rec
}

func TestCreateReviewValidationMessages(t *testing.T) {
	h := NewReviewHandler(fakeReviewStore{})
	cases := []struct {
		name    string
		body    map[string]any
		wantMsg string
	}{
		{"all empty", map[string]any{}, "all fields are required"},
		{"missing message", map[string]any{"username": "bob", "rating": 4}, "please fill out a message"},
		{"missing rating", map[string]any{"username": "bob", "review_text": "great"}, "please select a rating"},
		{"rating out of range", map[string]any{"username": "bob", "review_text": "great", "rating": 9}, "between 1 and 5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := reviewContext(t, tc.body)
			if err := h.CreateReview(c); err != nil {
				t.Fatalf("create review: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if body := rec.Body.String(); !strings.Contains(body, tc.wantMsg) {
				t.Fatalf("body %q does not contain %q", body, tc.wantMsg)
			}
		})
	}
}

func TestCreateReviewSuccess(t *testing.T) {
	store := fakeReviewStore{
		createFn: func(_ context.Context, tourID uint64, username, text string, rating int) (uint64, error) {
			if tourID != 3 || username != "bob" || text != "great" || rating != 5 {
				t.Fatalf("unexpected args: %d %q %q %d", tourID, username, text, rating)
			}
			return 11, nil
		},
	}
	h := NewReviewHandler(store)
	c, rec := reviewContext(t, map[string]any{"username": "bob", "review_text": "great", "rating": 5})
	if err := h.CreateReview(c); err != nil {
		t.Fatalf("create review: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	if data["id"] != float64(11) {
		t.Fatalf("id = %v, want 11", data["id"])
	}
}

func TestCreateReviewUnknownTour(t *testing.T) {
	store := fakeReviewStore{
		createFn: func(context.Context, uint64, string, string, int) (uint64, error) {
			return 0, repository.ErrNotFound
		},
	}
	h := NewReviewHandler(store)
	c, rec := reviewContext(t, map[string]any{"username": "bob", "review_text": "great", "rating": 5})
	if err := h.CreateReview(c); err != nil {
		t.Fatalf("create review: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
