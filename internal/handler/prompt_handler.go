package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
)

// PromptHandler handles prompt library HTTP requests.
type PromptHandler struct {
	promptService service.PromptServiceInterface
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(promptService service.PromptServiceInterface) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// PromptRequest is the writable part of a prompt.
type PromptRequest struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (r PromptRequest) toPrompt() *domain.Prompt {
	return &domain.Prompt{Title: r.Title, Body: r.Body, Category: r.Category, Tags: r.Tags}
}

// List handles GET /api/v1/prompts?category=
func (h *PromptHandler) List(c *gin.Context) {
	prompts, err := h.promptService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err, "failed to list prompts")
		return
	}
	c.JSON(http.StatusOK, prompts)
}

// Create handles POST /api/v1/prompts
func (h *PromptHandler) Create(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	prompt, err := h.promptService.Create(c.Request.Context(), req.toPrompt())
	if err != nil {
		respondError(c, err, "failed to create prompt")
		return
	}
	c.JSON(http.StatusCreated, prompt)
}

// Get handles GET /api/v1/prompts/:id
func (h *PromptHandler) Get(c *gin.Context) {
	prompt, err := h.promptService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get prompt")
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// Update handles PUT /api/v1/prompts/:id
func (h *PromptHandler) Update(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	prompt, err := h.promptService.Update(c.Request.Context(), c.Param("id"), req.toPrompt())
	if err != nil {
		respondError(c, err, "failed to update prompt")
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// Delete handles DELETE /api/v1/prompts/:id
func (h *PromptHandler) Delete(c *gin.Context) {
	if err := h.promptService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete prompt")
		return
	}
	c.Status(http.StatusNoContent)
}
