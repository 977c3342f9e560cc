package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/service"
)

// TaskHandler handles task board HTTP requests.
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest is the writable part of a task.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	ContentID   string     `json:"contentId"`
	DueDate     *time.Time `json:"dueDate"`
	Assignee    string     `json:"assignee"`
	Tags        []string   `json:"tags"`
}

func (r TaskRequest) toTask() *domain.Task {
	return &domain.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.TaskStatus(r.Status),
		ContentID:   r.ContentID,
		DueDate:     r.DueDate,
		Assignee:    r.Assignee,
		Tags:        r.Tags,
	}
}

// TaskStatusRequest is the body of a task status change.
type TaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List handles GET /api/v1/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create handles POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), req.toTask())
	if err != nil {
		respondError(c, err, "failed to create task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Get handles GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.taskService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update handles PUT /api/v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), c.Param("id"), req.toTask())
	if err != nil {
		respondError(c, err, "failed to update task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateStatus handles PUT /api/v1/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req TaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "failed to update task status")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}
