package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the verification endpoints under rg (usually /api/v1/verifications).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.List)
	rg.GET("/:task_id/:kind", h.Get)
	rg.DELETE("/:task_id/:kind", h.Discard)
	rg.POST("/:task_id/:kind/capture", h.Capture)
}
