package llm

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

// openAIProvider talks to any OpenAI-compatible chat completions API. The
// hosted, local and OpenRouter variants all reduce to this adapter with a
// different base URL.
type openAIProvider struct {
	backend string
	api     *openai.Client
	model   string
}

func NewOpenAI(cfg Config) (*openAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigError{Reason: "openai: API key is required"}
	}
	return newOpenAICompatible("openai", cfg)
}

func newOpenAICompatible(backend string, cfg Config) (*openAIProvider, error) {
	if cfg.Model == "" {
		return nil, &ConfigError{Reason: backend + ": model name is required"}
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openAIProvider{
		backend: backend,
		api:     openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
	}, nil
}

func (p *openAIProvider) GenerateResponse(
	ctx context.Context,
	messages []domain.ChatMessage,
	settings domain.GenerationSettings,
) (string, error) {
	resp, err := p.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    toOpenAIMessages(messages),
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	})
	if err != nil {
		return "", &ProviderError{Backend: p.backend, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Backend: p.backend, Err: errors.New("no choices in response")}
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &ProviderError{Backend: p.backend, Err: errors.New("empty message content")}
	}

	return content, nil
}

// toOpenAIMessages passes the three known roles through unchanged; a role
// this codebase never produces is sent as a user turn.
func toOpenAIMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		switch role {
		case domain.RoleSystem, domain.RoleUser, domain.RoleAssistant:
		default:
			role = domain.RoleUser
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}
