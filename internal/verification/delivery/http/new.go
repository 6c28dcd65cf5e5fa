package http

import (
	"github.com/gin-gonic/gin"

	"proof-timeline/internal/verification"
	"proof-timeline/pkg/log"
)

// Handler is the public interface for the verification HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Capture(c *gin.Context)
	Discard(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc verification.UseCase
}

// New creates a new HTTP handler for verification sessions.
func New(l log.Logger, uc verification.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
