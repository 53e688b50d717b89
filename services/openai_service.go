package services

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ChatCompleter is the part of the OpenAI client the chat assistant needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIService wraps the go-openai client.
type OpenAIService struct {
	Client *openai.Client
}

// NewOpenAIService builds a client for api.openai.com or, when baseURL is set,
// any OpenAI-compatible endpoint.
func NewOpenAIService(apiKey, baseURL string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIService{Client: openai.NewClientWithConfig(config)}
}

func (s *OpenAIService) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return s.Client.CreateChatCompletion(ctx, req)
}
