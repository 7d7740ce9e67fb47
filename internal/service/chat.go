package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/soc-lens/backend/internal/metrics"
	"github.com/soc-lens/backend/internal/model"
	"github.com/soc-lens/backend/internal/prompt"
)

const emptyQuestionAnswer = "Please ask a question."

// ChatService - 조사 세션에 스코프된 질의응답
// 컨텍스트(알림 JSON, 관련 로그)는 요청 본문으로 명시적으로 전달받는다.
type ChatService struct {
	ai AIProvider
}

// NewChatService - ai는 nil 허용 (미설정)
func NewChatService(ai AIProvider) *ChatService {
	return &ChatService{ai: ai}
}

// Chat - 질문 + 선택적 컨텍스트로 답변 생성
// AI 실패는 답변 본문으로 인라인 표시하고 HTTP 레벨 에러로 올리지 않음
func (s *ChatService) Chat(ctx context.Context, req model.ChatRequest) *model.ChatResponse {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	resp := &model.ChatResponse{ConversationID: conversationID}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		resp.Answer = emptyQuestionAnswer
		return resp
	}

	metrics.ChatTurnsTotal.Inc()

	if s.ai == nil {
		resp.Answer = aiUnavailable
		return resp
	}

	answer, err := s.ai.Generate(ctx, prompt.ChatSystem,
		prompt.ChatBody(question, req.AlertContext, req.LogsContext))
	if err != nil {
		resp.Answer = "Error: " + err.Error()
		return resp
	}

	resp.Answer = answer
	return resp
}
