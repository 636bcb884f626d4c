package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftlane/souvenirs-backend/internal/platform/ctxutil"
)

func traceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TraceContext())
	router.GET("/ping", func(c *gin.Context) {
		info := ctxutil.RequestInfoFrom(c.Request.Context())
		if info == nil {
			c.String(http.StatusInternalServerError, "no request info")
			return
		}
		c.String(http.StatusOK, info.RequestID)
	})
	return router
}

func TestTraceContextGeneratesRequestID(t *testing.T) {
	router := traceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
}

func TestTraceContextHonorsCallerRequestID(t *testing.T) {
	router := traceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "upstream-42")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "upstream-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "upstream-42", w.Body.String())
}
