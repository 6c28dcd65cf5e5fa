package http

import (
	"github.com/gin-gonic/gin"

	"proof-timeline/pkg/response"
)

// ListDay godoc
// @Summary     List the tasks of a day
// @Description Returns the tasks scheduled on the given day in start order.
// @Tags        Timeline
// @Produce     json
// @Param       day query string false "today, tomorrow, yesterday, in N days or YYYY-MM-DD (default: today)"
// @Success     200 {object} listDayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline [GET]
func (h *handler) ListDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListDay(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.ListDay", err)
		return
	}

	response.OK(c, h.newListDayResp(output))
}

// CreateTask godoc
// @Summary     Create a task
// @Description Adds a task to the timeline, optionally mirrored to Google Calendar.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateTask(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.CreateTask", err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// ChangeActualStart godoc
// @Summary     Record the actual start of a task
// @Description Moves the task to its actual start and shifts every task it now overlaps.
// @Tags        Timeline
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Task ID"
// @Param       body body actualStartReq true "Actual start"
// @Success     200 {object} actualStartResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/timeline/tasks/{id}/actual-start [POST]
func (h *handler) ChangeActualStart(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processActualStartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ChangeActualStart(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.ChangeActualStart", err)
		return
	}

	response.OK(c, h.newActualStartResp(output))
}
