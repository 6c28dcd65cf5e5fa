package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"proof-timeline/internal/recognition"
)

// Verify godoc
// @Summary     Recognise a photo and optionally match keywords
// @Description Proxies the image to the classification provider. With keywords the answer carries a verdict, without it the raw recognition.
// @Tags        Recognition
// @Accept      json
// @Produce     json
// @Param       body body verifyReq true "Image and provider credentials"
// @Success     200 {object} matchResp
// @Failure     400 {object} errorResp
// @Failure     405 {object} errorResp
// @Failure     500 {object} errorResp
// @Router      /verify [POST]
func (h *handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()
	setCORS(c)

	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
		return
	case http.MethodPost:
	default:
		c.JSON(http.StatusMethodNotAllowed, errorResp{Message: "method not allowed"})
		return
	}

	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Message: err.Error()})
		return
	}

	keywords := req.keywords()
	result, err := h.gateway.Classify(ctx, req.credentials(), req.Image)
	switch {
	case err == nil:
	case errors.Is(err, recognition.ErrRecognitionEmpty):
		h.l.Infof(ctx, "recognition.delivery.Verify: no usable labels")
	default:
		h.l.Errorf(ctx, "recognition.delivery.Verify: gateway.Classify: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Message: err.Error()})
		return
	}

	if len(keywords) == 0 {
		msg := "recognition succeeded"
		if len(result.Labels) == 0 {
			msg = "no objects recognized"
		}
		c.JSON(http.StatusOK, recognizeResp{Success: true, Data: rawOrNull(result.Raw), Message: msg})
		return
	}

	verdict := h.matcher.Match(result.Texts(), keywords, h.policy)
	resp := matchResp{
		Success:           verdict.Success,
		MatchedKeywords:   verdict.Matched,
		RecognizedObjects: result.Labels,
		RawData:           rawOrNull(result.Raw),
	}
	if resp.MatchedKeywords == nil {
		resp.MatchedKeywords = []string{}
	}
	if resp.RecognizedObjects == nil {
		resp.RecognizedObjects = []recognition.Label{}
	}
	if verdict.Success {
		resp.Message = fmt.Sprintf("verified: matched %s", strings.Join(verdict.Matched, ", "))
	} else {
		resp.Message = fmt.Sprintf("not verified: missing %s", strings.Join(verdict.Unmatched, ", "))
	}
	c.JSON(http.StatusOK, resp)
}

// Recover turns a panic inside Verify into the proxy's 500 shape.
func (h *handler) Recover(c *gin.Context, err any) {
	h.l.Errorf(c.Request.Context(), "recognition.delivery.Verify: panic: %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResp{Message: "internal server error"})
}

func setCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
}
