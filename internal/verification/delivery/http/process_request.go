package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"proof-timeline/internal/verification"
)

var errMissingTaskID = errors.New("task_id is required")

// processSessionReq reads the task id and kind URI params.
func (h *handler) processSessionReq(c *gin.Context) (sessionReq, error) {
	req := sessionReq{TaskID: c.Param("task_id")}
	if req.TaskID == "" {
		return req, errMissingTaskID
	}
	kind, err := verification.ParseKind(c.Param("kind"))
	if err != nil {
		return req, err
	}
	req.Kind = kind
	return req, nil
}

// processCaptureReq binds the photo body on top of the session params.
func (h *handler) processCaptureReq(c *gin.Context) (captureReq, error) {
	var req captureReq
	sr, err := h.processSessionReq(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.sessionReq = sr
	return req, nil
}
