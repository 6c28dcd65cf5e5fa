package http

import (
	"github.com/gin-gonic/gin"

	"proof-timeline/pkg/response"
)

// List godoc
// @Summary     List verification sessions
// @Description Returns every live or finished session the controller holds.
// @Tags        Verification
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/verifications [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, newListResp(h.uc.List(c.Request.Context())))
}

// Get godoc
// @Summary     Observe a verification session
// @Tags        Verification
// @Produce     json
// @Param       task_id path string true "Task ID"
// @Param       kind    path string true "start or completion"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/verifications/{task_id}/{kind} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	s, err := h.uc.Get(ctx, req.TaskID, req.Kind)
	if err != nil {
		h.respondError(c, "uc.Get", err)
		return
	}

	response.OK(c, newSessionResp(s))
}

// Capture godoc
// @Summary     Submit a photo for an open window
// @Description Recognises the photo, matches it against the required keywords and settles the attempt.
// @Tags        Verification
// @Accept      json
// @Produce     json
// @Param       task_id path string     true "Task ID"
// @Param       kind    path string     true "start or completion"
// @Param       body    body captureReq true "Base64 photo"
// @Success     200 {object} captureResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     410 {object} response.Resp "Window timed out"
// @Failure     503 {object} response.Resp "Recognition not configured"
// @Router      /api/v1/verifications/{task_id}/{kind}/capture [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCaptureReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	output, err := h.uc.Capture(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Capture", err)
		return
	}

	response.OK(c, newCaptureResp(output))
}

// Discard godoc
// @Summary     Drop a finished verification session
// @Tags        Verification
// @Produce     json
// @Param       task_id path string true "Task ID"
// @Param       kind    path string true "start or completion"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Session still active"
// @Router      /api/v1/verifications/{task_id}/{kind} [DELETE]
func (h *handler) Discard(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionReq(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	if err := h.uc.Discard(ctx, req.TaskID, req.Kind); err != nil {
		h.respondError(c, "uc.Discard", err)
		return
	}

	response.OK(c, nil)
}
