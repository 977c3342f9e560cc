package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/middleware"
)

func newRequestIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) {
		*captured = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var captured string
	router := newRequestIDRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, captured)
}

func TestRequestID_ClientProvidedID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "plain id", header: "client-provided-id-12345", wantKept: true},
		{name: "trace style id", header: "trace:abc.123_x", wantKept: true},
		{name: "newline injection", header: "abc\nforged: 1", wantKept: false},
		{name: "spaces", header: "two words", wantKept: false},
		{name: "too long", header: strings.Repeat("a", 129), wantKept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			router := newRequestIDRouter(&captured)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header[middleware.RequestIDHeader] = []string{tt.header}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			if tt.wantKept {
				assert.Equal(t, tt.header, captured)
			} else {
				assert.NotEqual(t, tt.header, captured)
				assert.Len(t, captured, 36)
			}
			assert.Equal(t, captured, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRequestID_MultipleRequests_DifferentIDs(t *testing.T) {
	var captured string
	router := newRequestIDRouter(&captured)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		seen[captured] = true
	}
	assert.Len(t, seen, 3)
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty when not set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, middleware.GetRequestID(c))
	})

	t.Run("returns the stored id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.RequestIDKey, "test-request-id")
		assert.Equal(t, "test-request-id", middleware.GetRequestID(c))
	})

	t.Run("empty when the stored value is not a string", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.RequestIDKey, 12345)
		assert.Empty(t, middleware.GetRequestID(c))
	})
}
