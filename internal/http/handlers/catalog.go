package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftlane/souvenirs-backend/internal/http/response"
	"github.com/giftlane/souvenirs-backend/internal/services"
)

type CatalogHandler struct {
	svc services.CatalogService
}

func NewCatalogHandler(svc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// GET /api/souvenirs
func (h *CatalogHandler) ListAll(c *gin.Context) {
	souvenirs, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"souvenirs": souvenirs})
}

// GET /api/souvenirs/cheap?max_price=
func (h *CatalogHandler) ListCheap(c *gin.Context) {
	maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	souvenirs, err := h.svc.ListCheap(c.Request.Context(), maxPrice)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"souvenirs": souvenirs})
}

// GET /api/souvenirs/top?n=
func (h *CatalogHandler) TopRated(c *gin.Context) {
	n, err := strconv.Atoi(c.Query("n"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	souvenirs, err := h.svc.TopRated(c.Request.Context(), n)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"souvenirs": souvenirs})
}

// GET /api/souvenirs/tag/:name
func (h *CatalogHandler) ByTag(c *gin.Context) {
	cards, err := h.svc.ByTag(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"souvenirs": cards})
}

// GET /api/souvenirs/count?country=&min_rating=&max_price=
func (h *CatalogHandler) CountMatching(c *gin.Context) {
	minRating, err := strconv.ParseFloat(c.Query("min_rating"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	count, err := h.svc.CountMatching(c.Request.Context(), c.Query("country"), minRating, maxPrice)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GET /api/souvenirs/search?q=
func (h *CatalogHandler) Search(c *gin.Context) {
	souvenirs, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"souvenirs": souvenirs})
}

// GET /api/souvenirs/discussed?min_reviews=
func (h *CatalogHandler) Discussed(c *gin.Context) {
	minReviews, err := strconv.Atoi(c.Query("min_reviews"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	souvenirs, err := h.svc.Discussed(c.Request.Context(), minReviews)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"souvenirs": souvenirs})
}

// DELETE /api/souvenirs/out-of-stock
func (h *CatalogHandler) SweepOutOfStock(c *gin.Context) {
	removed, err := h.svc.SweepOutOfStock(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// POST /api/souvenirs/:id/reviews
func (h *CatalogHandler) AddReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	var in services.AddReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	souvenir, err := h.svc.AddReview(c.Request.Context(), uint(id), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"souvenir": souvenir})
}

// GET /api/carts/sum?login=
func (h *CatalogHandler) CartSum(c *gin.Context) {
	sum, err := h.svc.CartSum(c.Request.Context(), c.Query("login"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sum": sum})
}
