package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
)

// PreferencesHandler handles the preferences document.
type PreferencesHandler struct {
	preferencesService service.PreferencesServiceInterface
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(preferencesService service.PreferencesServiceInterface) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// Get handles GET /api/v1/preferences
func (h *PreferencesHandler) Get(c *gin.Context) {
	prefs, err := h.preferencesService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to get preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// Update handles PUT /api/v1/preferences. Only the supplied keys change.
func (h *PreferencesHandler) Update(c *gin.Context) {
	var req service.PreferencesUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must be a JSON object")
		return
	}

	prefs, err := h.preferencesService.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}
