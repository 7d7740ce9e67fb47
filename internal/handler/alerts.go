package handler

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/soc-lens/backend/internal/model"
	"github.com/soc-lens/backend/internal/service"
)

type AlertsHandler struct {
	svc *service.AlertsService
}

func NewAlertsHandler(svc *service.AlertsService) *AlertsHandler {
	return &AlertsHandler{svc: svc}
}

// Alerts - GET /api/alerts
// 매 요청마다 피드에서 새로 계산한 알림 목록 + 차트 데이터 반환
func (h *AlertsHandler) Alerts(c *gin.Context) {
	resp, err := h.svc.Fetch()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.JSON(status, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
