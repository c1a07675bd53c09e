package handler

// Fake stores shared by the handler tests. Each fake delegates to an
// optional function field so individual tests only wire up the calls they
// expect, mirroring how the repositories are substituted in production.

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Achawin1998/tours-travel-backend/internal/model"
	"github.com/Achawin1998/tours-travel-backend/internal/queue"
	"github.com/Achawin1998/tours-travel-backend/internal/repository"
)

type fakeUserStore struct {
	createFn     func(ctx context.Context, username, email, password string, cost int) (model.User, error)
	getByEmailFn func(ctx context.Context, email string) (model.User, error)
	getByIDFn    func(ctx context.Context, id uint64) (model.User, error)
	updateFn     func(ctx context.Context, id uint64, p repository.UserUpdate, cost int) (model.User, error)
	deleteFn     func(ctx context.Context, id uint64) error
	listFn       func(ctx context.Context) ([]model.User, error)
}

func (f fakeUserStore) Create(ctx context.Context, username, email, password string, cost int) (model.User, error) {
	if f.createFn == nil {
		return model.User{}, nil
	}
	return f.createFn(ctx, username, email, password, cost)
}

func (f fakeUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	if f.getByEmailFn == nil {
		return model.User{}, repository.ErrNotFound
	}
	return f.getByEmailFn(ctx, email)
}

func (f fakeUserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	if f.getByIDFn == nil {
		return model.User{}, repository.ErrNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f fakeUserStore) Update(ctx context.Context, id uint64, p repository.UserUpdate, cost int) (model.User, error) {
	if f.updateFn == nil {
		return model.User{}, repository.ErrNotFound
	}
	return f.updateFn(ctx, id, p, cost)
}

func (f fakeUserStore) Delete(ctx context.Context, id uint64) error {
	if f.deleteFn == nil {
		return repository.ErrNotFound
	}
	return f.deleteFn(ctx, id)
}

func (f fakeUserStore) List(ctx context.Context) ([]model.User, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

type fakeTourStore struct {
	createFn   func(ctx context.Context, in repository.TourInput) (model.Tour, error)
	updateFn   func(ctx context.Context, id uint64, in repository.TourInput) (model.Tour, error)
	deleteFn   func(ctx context.Context, id uint64) error
	getFn      func(ctx context.Context, id uint64) (model.TourWithReviews, error)
	listFn     func(ctx context.Context, page int) ([]model.TourWithReviews, error)
	featuredFn func(ctx context.Context, page int) ([]model.TourWithReviews, error)
	searchFn   func(ctx context.Context, q repository.TourSearch) ([]model.TourWithReviews, error)
	countFn    func(ctx context.Context) (int64, error)
}

func (f fakeTourStore) Create(ctx context.Context, in repository.TourInput) (model.Tour, error) {
	if f.createFn == nil {
		return model.Tour{}, nil
	}
	return f.createFn(ctx, in)
}

func (f fakeTourStore) Update(ctx context.Context, id uint64, in repository.TourInput) (model.Tour, error) {
	if f.updateFn == nil {
		return model.Tour{}, repository.ErrNotFound
	}
	return f.updateFn(ctx, id, in)
}

func (f fakeTourStore) Delete(ctx context.Context, id uint64) error {
	if f.deleteFn == nil {
		return repository.ErrNotFound
	}
	return f.deleteFn(ctx, id)
}

func (f fakeTourStore) GetWithReviews(ctx context.Context, id uint64) (model.TourWithReviews, error) {
	if f.getFn == nil {
		return model.TourWithReviews{}, repository.ErrNotFound
	}
	return f.getFn(ctx, id)
}

func (f fakeTourStore) ListPage(ctx context.Context, page int) ([]model.TourWithReviews, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, page)
}

func (f fakeTourStore) ListFeatured(ctx context.Context, page int) ([]model.TourWithReviews, error) {
	if f.featuredFn == nil {
		return nil, nil
	}
	return f.featuredFn(ctx, page)
}

func (f fakeTourStore) Search(ctx context.Context, q repository.TourSearch) ([]model.TourWithReviews, error) {
	if f.searchFn == nil {
		return nil, nil
	}
	return f.searchFn(ctx, q)
}

func (f fakeTourStore) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

type fakeReviewStore struct {
	createFn func(ctx context.Context, tourID uint64, username, reviewText string, rating int) (uint64, error)
}

func (f fakeReviewStore) Create(ctx context.Context, tourID uint64, username, reviewText string, rating int) (uint64, error) {
	if f.createFn == nil {
		return 1, nil
	}
	return f.createFn(ctx, tourID, username, reviewText, rating)
}

type fakeBookingStore struct {
	createFn func(ctx context.Context, in repository.BookingInput) (model.Booking, error)
	getFn    func(ctx context.Context, id uint64) (model.Booking, error)
	listFn   func(ctx context.Context) ([]model.Booking, error)
}

func (f fakeBookingStore) Create(ctx context.Context, in repository.BookingInput) (model.Booking, error) {
	if f.createFn == nil {
		return model.Booking{}, nil
	}
	return f.createFn(ctx, in)
}

func (f fakeBookingStore) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	if f.getFn == nil {
		return model.Booking{}, repository.ErrNotFound
	}
	return f.getFn(ctx, id)
}

func (f fakeBookingStore) List(ctx context.Context) ([]model.Booking, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

type fakePublisher struct {
	events []queue.BookingCreatedEvent
	err    error
}

func (f *fakePublisher) BookingCreated(_ context.Context, ev queue.BookingCreatedEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

// newTestContext builds an echo context around an optional JSON body.
func newTestContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// decodeBody unmarshals a recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}
