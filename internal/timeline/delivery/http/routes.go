package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the timeline endpoints under rg (usually /api/v1/timeline).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.ListDay)
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.POST("/:id/actual-start", h.ChangeActualStart)
	}
}
