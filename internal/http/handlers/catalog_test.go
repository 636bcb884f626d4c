package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/giftlane/souvenirs-backend/internal/domain"
	pkgerrors "github.com/giftlane/souvenirs-backend/internal/pkg/errors"
	"github.com/giftlane/souvenirs-backend/internal/services"
)

// stubCatalog implements services.CatalogService with canned data so the
// handlers can be tested without a database.
type stubCatalog struct {
	souvenirs []*types.Souvenir
	sum       float64
	addErr    error
}

func (s *stubCatalog) ListAll(context.Context) ([]*types.Souvenir, error) {
	return s.souvenirs, nil
}

func (s *stubCatalog) ListCheap(_ context.Context, maxPrice float64) ([]*types.Souvenir, error) {
	if maxPrice < 0 {
		return nil, fmt.Errorf("negative max price: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.souvenirs, nil
}

func (s *stubCatalog) TopRated(context.Context, int) ([]*types.Souvenir, error) {
	return s.souvenirs, nil
}

func (s *stubCatalog) ByTag(context.Context, string) ([]*types.SouvenirCard, error) {
	return []*types.SouvenirCard{}, nil
}

func (s *stubCatalog) CountMatching(context.Context, string, float64, float64) (int64, error) {
	return int64(len(s.souvenirs)), nil
}

func (s *stubCatalog) Search(context.Context, string) ([]*types.Souvenir, error) {
	return s.souvenirs, nil
}

func (s *stubCatalog) Discussed(context.Context, int) ([]*types.DiscussedSouvenir, error) {
	return []*types.DiscussedSouvenir{}, nil
}

func (s *stubCatalog) SweepOutOfStock(context.Context) (int64, error) { return 0, nil }

func (s *stubCatalog) AddReview(context.Context, uint, services.AddReviewInput) (*types.Souvenir, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.souvenirs[0], nil
}

func (s *stubCatalog) CartSum(context.Context, string) (float64, error) { return s.sum, nil }

func newTestRouter(stub *stubCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCatalogHandler(stub)
	router.GET("/api/souvenirs/cheap", h.ListCheap)
	router.POST("/api/souvenirs/:id/reviews", h.AddReview)
	router.GET("/api/carts/sum", h.CartSum)
	return router
}

func TestListCheapHandlerValidation(t *testing.T) {
	router := newTestRouter(&stubCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/souvenirs/cheap", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing max_price should be rejected")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/souvenirs/cheap?max_price=-5", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code, "negative max_price maps to 400")
	assert.Contains(t, w.Body.String(), "invalid_argument")
}

func TestAddReviewHandlerStatusMapping(t *testing.T) {
	souvenir := &types.Souvenir{ID: 1, Name: "Gondola Model", Rating: 4.5}

	router := newTestRouter(&stubCatalog{souvenirs: []*types.Souvenir{souvenir}})
	w := httptest.NewRecorder()
	body := strings.NewReader(`{"login":"marco","text":"ok","rating":4}`)
	req := httptest.NewRequest(http.MethodPost, "/api/souvenirs/1/reviews", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gondola Model")

	router = newTestRouter(&stubCatalog{addErr: fmt.Errorf("user: %w", pkgerrors.ErrNotFound)})
	w = httptest.NewRecorder()
	body = strings.NewReader(`{"login":"ghost","rating":4}`)
	req = httptest.NewRequest(http.MethodPost, "/api/souvenirs/1/reviews", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	router = newTestRouter(&stubCatalog{addErr: fmt.Errorf("tx: %w", pkgerrors.ErrConflictRetryable)})
	w = httptest.NewRecorder()
	body = strings.NewReader(`{"login":"marco","rating":4}`)
	req = httptest.NewRequest(http.MethodPost, "/api/souvenirs/1/reviews", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/souvenirs/not-a-number/reviews", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartSumHandler(t *testing.T) {
	router := newTestRouter(&stubCatalog{sum: 60})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/carts/sum?login=shopper", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sum":60}`, w.Body.String())
}
