package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processListDayReq binds the day query parameter.
func (h *handler) processListDayReq(c *gin.Context) (listDayReq, error) {
	var req listDayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateTaskReq binds and validates the create task body.
func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processActualStartReq binds the body and the task id URI param.
func (h *handler) processActualStartReq(c *gin.Context) (actualStartReq, error) {
	var req actualStartReq
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
