package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
)

// MigrationHandler runs the status reconciler and manages its archives.
type MigrationHandler struct {
	migrationService service.MigrationServiceInterface
}

// NewMigrationHandler creates a new MigrationHandler.
func NewMigrationHandler(migrationService service.MigrationServiceInterface) *MigrationHandler {
	return &MigrationHandler{migrationService: migrationService}
}

// MigrationRequest is the body of a reconciler run.
type MigrationRequest struct {
	Mode   string `json:"mode" binding:"required"`
	DryRun bool   `json:"dryRun"`
}

// Run handles POST /api/v1/migrations
func (h *MigrationHandler) Run(c *gin.Context) {
	var req MigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "mode is required")
		return
	}

	tally, err := h.migrationService.Run(c.Request.Context(), req.Mode, req.DryRun)
	if err != nil {
		respondError(c, err, "migration failed")
		return
	}
	c.JSON(http.StatusOK, tally)
}

// Archives handles GET /api/v1/migrations/archives
func (h *MigrationHandler) Archives(c *gin.Context) {
	archives, err := h.migrationService.Archives(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list archives")
		return
	}
	c.JSON(http.StatusOK, archives)
}

// Rollback handles POST /api/v1/migrations/archives/:name/rollback
func (h *MigrationHandler) Rollback(c *gin.Context) {
	result, err := h.migrationService.Rollback(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err, "rollback failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Discard handles DELETE /api/v1/migrations/archives/:name
func (h *MigrationHandler) Discard(c *gin.Context) {
	if err := h.migrationService.Discard(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err, "failed to discard archive")
		return
	}
	c.Status(http.StatusNoContent)
}
