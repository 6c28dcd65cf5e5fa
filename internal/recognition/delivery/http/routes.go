package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps /verify for every method; the handler answers OPTIONS
// and rejects everything but POST itself.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.Any("/verify", gin.CustomRecovery(h.Recover), h.Verify)
}
