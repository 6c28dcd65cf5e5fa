package http

import (
	"github.com/gin-gonic/gin"

	"proof-timeline/internal/settlement"
	"proof-timeline/pkg/response"
)

type listReq struct {
	TaskID string `form:"task_id" binding:"required"`
}

type listResp struct {
	TaskID      string              `json:"task_id"`
	Settlements []settlement.Record `json:"settlements"`
	Net         int                 `json:"net"`
	Balance     int                 `json:"balance"`
}

// ListByTask godoc
// @Summary     List the settlements of a task
// @Description Returns every reward and penalty applied to the task and the current ledger balance.
// @Tags        Settlement
// @Produce     json
// @Param       task_id query string true "Task ID"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settlements [GET]
func (h *handler) ListByTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	records, err := h.uc.ListByTask(ctx, req.TaskID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByTask: %v", err)
		response.InternalError(c, err)
		return
	}

	resp := listResp{TaskID: req.TaskID, Settlements: records}
	if resp.Settlements == nil {
		resp.Settlements = []settlement.Record{}
	}
	for _, r := range records {
		if r.Kind == settlement.KindPenalty {
			resp.Net -= r.Amount
		} else {
			resp.Net += r.Amount
		}
	}
	if h.balance != nil {
		resp.Balance = h.balance.Balance()
	}
	response.OK(c, resp)
}
