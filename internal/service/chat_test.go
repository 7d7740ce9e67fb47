package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/soc-lens/backend/internal/model"
)

func strPtr(s string) *string { return &s }

func TestChatEmptyQuestion(t *testing.T) {
	svc := NewChatService(&fakeAI{answer: "should not be used"})
	resp := svc.Chat(context.Background(), model.ChatRequest{Question: "   "})
	if resp.Answer != emptyQuestionAnswer {
		t.Fatalf("answer = %q", resp.Answer)
	}
	if resp.ConversationID == "" {
		t.Fatalf("conversation id must be assigned")
	}
}

func TestChatCarriesContext(t *testing.T) {
	ai := &fakeAI{answer: "the attacker IP is 1.2.3.4"}
	svc := NewChatService(ai)

	resp := svc.Chat(context.Background(), model.ChatRequest{
		Question:       "what is the attacker IP?",
		ConversationID: "conv-1",
		AlertContext:   strPtr(`{"rule":{"id":"100"}}`),
		LogsContext:    strPtr("2024-01-01 10:00:00 login from 1.2.3.4"),
	})

	if resp.Answer != "the attacker IP is 1.2.3.4" {
		t.Fatalf("answer = %q", resp.Answer)
	}
	if resp.ConversationID != "conv-1" {
		t.Fatalf("conversation id must be preserved, got %q", resp.ConversationID)
	}
	for _, want := range []string{`{"rule":{"id":"100"}}`, "login from 1.2.3.4", "what is the attacker IP?"} {
		if !strings.Contains(ai.lastUser, want) {
			t.Fatalf("prompt missing %q: %q", want, ai.lastUser)
		}
	}
}

// AI 에러는 HTTP 에러가 아니라 답변 본문으로 인라인 표시
func TestChatAIError(t *testing.T) {
	svc := NewChatService(&fakeAI{err: errors.New("quota exceeded")})
	resp := svc.Chat(context.Background(), model.ChatRequest{Question: "hi"})
	if resp.Answer != "Error: quota exceeded" {
		t.Fatalf("answer = %q", resp.Answer)
	}
}

func TestChatWithoutAI(t *testing.T) {
	svc := NewChatService(nil)
	resp := svc.Chat(context.Background(), model.ChatRequest{Question: "hi"})
	if resp.Answer != aiUnavailable {
		t.Fatalf("answer = %q", resp.Answer)
	}
}
