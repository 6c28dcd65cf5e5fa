package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"proof-timeline/internal/recognition"
	"proof-timeline/internal/verification"
	"proof-timeline/pkg/response"
)

// mapError translates use-case errors into HTTP errors. Unknown errors map to nil.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, verification.ErrSessionNotFound):
		return response.NewHTTPError(http.StatusNotFound, "verification session not found")
	case errors.Is(err, verification.ErrCaptureInProgress),
		errors.Is(err, verification.ErrSessionActive),
		errors.Is(err, verification.ErrSessionClosed),
		errors.Is(err, verification.ErrWindowNotOpen):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, verification.ErrVerificationTimeout):
		return response.NewHTTPError(http.StatusGone, err.Error())
	case errors.Is(err, verification.ErrInvalidKind),
		errors.Is(err, verification.ErrEmptyImage):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, recognition.ErrConfiguration):
		return response.NewHTTPError(http.StatusServiceUnavailable, err.Error())
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

// badRequest answers request parsing errors, 400 unless a domain error says otherwise.
func (h *handler) badRequest(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		err = mapped
	}
	response.Error(c, err, nil)
}
