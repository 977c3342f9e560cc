package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/cache"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
)

// BoardHandler serves both kanban boards and the contribution calendar.
type BoardHandler struct {
	boardService   service.BoardServiceInterface
	contentService service.ContentServiceInterface
	now            func() time.Time
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boardService service.BoardServiceInterface, contentService service.ContentServiceInterface) *BoardHandler {
	return &BoardHandler{
		boardService:   boardService,
		contentService: contentService,
		now:            time.Now,
	}
}

// MoveCardRequest is the body of a content card move.
type MoveCardRequest struct {
	Column string `json:"column" binding:"required"`
}

// ContentBoard handles GET /api/v1/kanban/content
func (h *BoardHandler) ContentBoard(c *gin.Context) {
	board, version, err := h.boardService.ContentBoard(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to build content board")
		return
	}

	c.Header("ETag", cache.ETag(version))
	if cache.Matches(c.GetHeader("If-None-Match"), version) {
		c.Status(http.StatusNotModified)
		return
	}
	c.JSON(http.StatusOK, board)
}

// MoveCard handles PUT /api/v1/kanban/content/:id
func (h *BoardHandler) MoveCard(c *gin.Context) {
	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "column is required")
		return
	}

	item, err := h.contentService.MoveCard(c.Request.Context(), c.Param("id"), req.Column)
	if err != nil {
		respondError(c, err, "failed to move card")
		return
	}
	c.JSON(http.StatusOK, item)
}

// TaskBoard handles GET /api/v1/kanban/tasks
func (h *BoardHandler) TaskBoard(c *gin.Context) {
	board, err := h.boardService.TaskBoard(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to build task board")
		return
	}
	c.JSON(http.StatusOK, board)
}

// Calendar handles GET /api/v1/calendar?year=YYYY. The year defaults to the
// current one.
func (h *BoardHandler) Calendar(c *gin.Context) {
	year := h.now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 || y > 9999 {
			respondError(c, domain.NewValidationError("year", "invalid_year"), "")
			return
		}
		year = y
	}

	cal, err := h.boardService.Calendar(c.Request.Context(), year)
	if err != nil {
		respondError(c, err, "failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, cal)
}
