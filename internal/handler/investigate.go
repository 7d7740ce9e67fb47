package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soc-lens/backend/internal/metrics"
	"github.com/soc-lens/backend/internal/model"
	"github.com/soc-lens/backend/internal/service"
)

type InvestigateHandler struct {
	svc *service.InvestigationService
}

func NewInvestigateHandler(svc *service.InvestigationService) *InvestigateHandler {
	return &InvestigateHandler{svc: svc}
}

// Investigate - POST /api/investigate
// 요청 본문은 알림 전체, 응답은 조사 번들 하나
func (h *InvestigateHandler) Investigate(c *gin.Context) {
	var alert model.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	bundle, err := h.svc.Investigate(c.Request.Context(), alert)
	if err != nil {
		metrics.InvestigationsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.InvestigationsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, bundle)
}
