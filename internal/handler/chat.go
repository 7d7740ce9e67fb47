package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soc-lens/backend/internal/model"
	"github.com/soc-lens/backend/internal/service"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat - POST /api/chat
// AI 실패는 답변 본문에 인라인으로 실리므로 여기서는 항상 200
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.svc.Chat(c.Request.Context(), req))
}
