package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/cache"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
)

// ContentHandler handles content-related HTTP requests.
type ContentHandler struct {
	contentService service.ContentServiceInterface
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentServiceInterface) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// StatusRequest is the body of the status endpoints.
type StatusRequest struct {
	Status string  `json:"status" binding:"required"`
	URL    *string `json:"url"`
}

// bindFields decodes a JSON object body. Values keep their JSON types so the
// service can coerce them.
func bindFields(c *gin.Context) (map[string]any, bool) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, "request body must be a JSON object")
		return nil, false
	}
	return fields, true
}

// List handles GET /api/v1/content?q=&tag=
func (h *ContentHandler) List(c *gin.Context) {
	filter := repository.ContentFilter{
		Query: strings.TrimSpace(c.Query("q")),
		Tag:   strings.TrimSpace(c.Query("tag")),
	}

	list, err := h.contentService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "failed to list content")
		return
	}

	c.Header("ETag", cache.ETag(list.Version))
	if cache.Matches(c.GetHeader("If-None-Match"), list.Version) {
		c.Status(http.StatusNotModified)
		return
	}
	c.JSON(http.StatusOK, list.Items)
}

// Create handles POST /api/v1/content
func (h *ContentHandler) Create(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	item, err := h.contentService.Create(c.Request.Context(), fields)
	if err != nil {
		respondError(c, err, "failed to create content")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Get handles GET /api/v1/content/:id
func (h *ContentHandler) Get(c *gin.Context) {
	item, err := h.contentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get content")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Replace handles PUT /api/v1/content/:id
func (h *ContentHandler) Replace(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	item, err := h.contentService.Replace(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, err, "failed to update content")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Patch handles PATCH /api/v1/content/:id
func (h *ContentHandler) Patch(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	item, err := h.contentService.PatchPublication(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, err, "failed to update content")
		return
	}
	c.JSON(http.StatusOK, item)
}

// SetStatus handles PUT /api/v1/content/:id/status/:lang
func (h *ContentHandler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	item, err := h.contentService.SetStatus(c.Request.Context(), c.Param("id"), c.Param("lang"), req.Status)
	if err != nil {
		respondError(c, err, "failed to update status")
		return
	}
	c.JSON(http.StatusOK, item)
}

// SetPlatformStatus handles PUT /api/v1/content/:id/platforms/:platform/status/:lang
func (h *ContentHandler) SetPlatformStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	item, err := h.contentService.SetPlatformStatus(c.Request.Context(),
		c.Param("id"), c.Param("platform"), c.Param("lang"), req.Status, req.URL)
	if err != nil {
		respondError(c, err, "failed to update platform status")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/v1/content/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete content")
		return
	}
	c.Status(http.StatusNoContent)
}
