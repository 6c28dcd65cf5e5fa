package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"proof-timeline/internal/timeline"
	"proof-timeline/pkg/response"
)

// mapError translates use-case errors into HTTP errors. Unknown errors map to nil.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timeline.ErrTaskNotFound):
		return response.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, timeline.ErrInvalidDay),
		errors.Is(err, timeline.ErrInvalidTask),
		errors.Is(err, timeline.ErrInvalidActualStart),
		errors.Is(err, timeline.ErrMissingDuration):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return nil
	}
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
