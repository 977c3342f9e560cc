package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/middleware"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Content     *ContentHandler
	Board       *BoardHandler
	Task        *TaskHandler
	Prompt      *PromptHandler
	Preferences *PreferencesHandler
	Backup      *BackupHandler
	Migration   *MigrationHandler
	Health      *HealthHandler
	// Realtime upgrades /ws requests to the change feed.
	Realtime http.HandlerFunc
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.GET("/live", h.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if h.Realtime != nil {
		router.GET("/ws", gin.WrapF(h.Realtime))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		content := v1.Group("/content")
		{
			content.GET("", h.Content.List)
			content.POST("", h.Content.Create)
			content.GET("/:id", h.Content.Get)
			content.PUT("/:id", h.Content.Replace)
			content.PATCH("/:id", h.Content.Patch)
			content.DELETE("/:id", h.Content.Delete)
			content.PUT("/:id/status/:lang", h.Content.SetStatus)
			content.PUT("/:id/platforms/:platform/status/:lang", h.Content.SetPlatformStatus)
		}

		kanban := v1.Group("/kanban")
		{
			kanban.GET("/content", h.Board.ContentBoard)
			kanban.PUT("/content/:id", h.Board.MoveCard)
			kanban.GET("/tasks", h.Board.TaskBoard)
		}
		v1.GET("/calendar", h.Board.Calendar)

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", h.Task.List)
			tasks.POST("", h.Task.Create)
			tasks.GET("/:id", h.Task.Get)
			tasks.PUT("/:id", h.Task.Update)
			tasks.PUT("/:id/status", h.Task.UpdateStatus)
			tasks.DELETE("/:id", h.Task.Delete)
		}

		prompts := v1.Group("/prompts")
		{
			prompts.GET("", h.Prompt.List)
			prompts.POST("", h.Prompt.Create)
			prompts.GET("/:id", h.Prompt.Get)
			prompts.PUT("/:id", h.Prompt.Update)
			prompts.DELETE("/:id", h.Prompt.Delete)
		}

		v1.GET("/preferences", h.Preferences.Get)
		v1.PUT("/preferences", h.Preferences.Update)

		v1.GET("/backup", h.Backup.Backup)
		v1.POST("/restore", h.Backup.CreateRestore)
		v1.GET("/restore/:id", h.Backup.GetRestore)

		migrations := v1.Group("/migrations")
		{
			migrations.POST("", h.Migration.Run)
			migrations.GET("/archives", h.Migration.Archives)
			migrations.POST("/archives/:name/rollback", h.Migration.Rollback)
			migrations.DELETE("/archives/:name", h.Migration.Discard)
		}
	}

	return router
}
