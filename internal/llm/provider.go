// Package llm holds the chat providers behind the generic conversational
// fallback. The bot hands a message here when classification comes back as
// general_chat; the fallback never mutates schedules.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type Message struct {
	Role    string
	Content string
}

type Request struct {
	Model    string
	System   string
	Messages []Message
}

type Response struct {
	Content string
}

type Provider interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

type Config struct {
	Provider         string
	Model            string
	OpenAIBaseURL    string
	OpenAIAPIKey     string
	AnthropicBaseURL string
	AnthropicAPIKey  string
}

func NewProvider(cfg Config) (Provider, error) {
	client := &http.Client{Timeout: 60 * time.Second}

	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(client, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey), nil
	case "claude":
		return NewClaudeProvider(client, cfg.AnthropicBaseURL, cfg.AnthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
