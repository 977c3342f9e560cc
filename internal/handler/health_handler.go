package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/metrics"
)

// ClientCounter reports the number of connected change feed clients.
type ClientCounter interface {
	Clients() int
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db      *pgxpool.Pool
	clients ClientCounter
	version string
}

// NewHealthHandler creates a new HealthHandler. db is nil when the server
// runs on the in-memory store; clients may be nil.
func NewHealthHandler(db *pgxpool.Pool, clients ClientCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, clients: clients, version: version}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
	Clients  *int              `json:"websocket_clients,omitempty"`
}

func (h *HealthHandler) pingDatabase(ctx context.Context) (string, error) {
	if h.db == nil {
		return "memory", nil
	}
	if err := h.db.Ping(ctx); err != nil {
		return "unhealthy", err
	}
	metrics.LogHealthCheckMetrics(ctx, h.db)
	return "healthy", nil
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	state, err := h.pingDatabase(c.Request.Context())
	services := map[string]string{"database": state}

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	resp := HealthResponse{
		Status:   "healthy",
		Version:  h.version,
		Services: services,
	}
	if h.clients != nil {
		n := h.clients.Clients()
		resp.Clients = &n
	}
	c.JSON(http.StatusOK, resp)
}

// Ready handles GET /ready - readiness check for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, err := h.pingDatabase(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness check for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
