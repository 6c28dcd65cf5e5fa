package http

import (
	"github.com/gin-gonic/gin"

	"proof-timeline/internal/timeline"
	"proof-timeline/pkg/log"
)

// Handler is the public interface for the timeline HTTP delivery layer.
type Handler interface {
	ListDay(c *gin.Context)
	CreateTask(c *gin.Context)
	ChangeActualStart(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc timeline.UseCase
}

// New creates a new HTTP handler for the timeline domain.
func New(l log.Logger, uc timeline.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
