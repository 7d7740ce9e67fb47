package client

import (
	"context"
	"fmt"

	"github.com/soc-lens/backend/internal/config"
	"google.golang.org/genai"
)

type AIClientConfig struct {
	APIKey string
	Model  string
}

type AIClient struct {
	client *genai.Client
	model  string
}

func NewAIClient(cfg config.AIConfig) (*AIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	clientCfg := AIClientConfig{APIKey: cfg.APIKey, Model: cfg.Model}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: clientCfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &AIClient{client: client, model: clientCfg.Model}, nil
}

// Generate - system/user 프롬프트 쌍으로 텍스트 생성
func (c *AIClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", fmt.Errorf("empty generation result")
	}
	return res.Text(), nil
}
