package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("labels by route template", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/v1/content/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/content/:id", "200")
		initialTotal := testutil.ToFloat64(counter)
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		for _, id := range []string{"a", "b"} {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/content/"+id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		assert.Equal(t, initialTotal+2, testutil.ToFloat64(counter))
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})

	t.Run("records error status codes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.DELETE("/api/v1/tasks/:id", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("DELETE", "/api/v1/tasks/:id", "404")
		initialTotal := testutil.ToFloat64(counter)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/x", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(counter))
	})

	t.Run("unmatched routes share one label", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")
		initialTotal := testutil.ToFloat64(counter)

		req := httptest.NewRequest(http.MethodGet, "/nope/123", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(counter))
	})

	t.Run("skips scrape and websocket endpoints", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/metrics", func(c *gin.Context) { c.String(http.StatusOK, "metrics data") })
		router.GET("/ws", func(c *gin.Context) { c.Status(http.StatusOK) })

		metricsCounter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")
		wsCounter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/ws", "200")
		initialMetrics := testutil.ToFloat64(metricsCounter)
		initialWS := testutil.ToFloat64(wsCounter)

		for _, path := range []string{"/metrics", "/ws"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		assert.Equal(t, initialMetrics, testutil.ToFloat64(metricsCounter))
		assert.Equal(t, initialWS, testutil.ToFloat64(wsCounter))
	})
}
