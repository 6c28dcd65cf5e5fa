package http

import (
	"github.com/gin-gonic/gin"

	"proof-timeline/internal/settlement"
	"proof-timeline/pkg/log"
)

// BalanceReader exposes the ledger balance. *ledger.Ledger satisfies it.
type BalanceReader interface {
	Balance() int
}

// Handler is the public interface for the settlement HTTP delivery layer.
type Handler interface {
	ListByTask(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      settlement.UseCase
	balance BalanceReader
}

// New creates a new HTTP handler for settlements.
func New(l log.Logger, uc settlement.UseCase, balance BalanceReader) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		balance: balance,
	}
}

// RegisterRoutes maps the settlement endpoints under rg (usually /api/v1/settlements).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.ListByTask)
}
