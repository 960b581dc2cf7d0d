package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

// The Messages API requires an explicit completion limit.
const anthropicDefaultMaxTokens = 1024

type anthropicProvider struct {
	api   anthropic.Client
	model string
}

func NewAnthropic(cfg Config) (*anthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigError{Reason: "anthropic: API key is required"}
	}
	if cfg.Model == "" {
		return nil, &ConfigError{Reason: "anthropic: model name is required"}
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &anthropicProvider{
		api:   anthropic.NewClient(opts...),
		model: cfg.Model,
	}, nil
}

func (p *anthropicProvider) GenerateResponse(
	ctx context.Context,
	messages []domain.ChatMessage,
	settings domain.GenerationSettings,
) (string, error) {
	system, turns := splitSystem(messages)

	maxTokens := settings.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	msg, err := p.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxTokens),
		System:      system,
		Messages:    turns,
		Temperature: anthropic.Float(float64(settings.Temperature)),
	})
	if err != nil {
		return "", &ProviderError{Backend: "anthropic", Err: err}
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &ProviderError{Backend: "anthropic", Err: errors.New("no text content in response")}
	}

	return sb.String(), nil
}

// splitSystem lifts the leading system message into the request's top-level
// system field: the Messages API rejects a "system" role inside the turn
// array. Everything that isn't an assistant turn is sent as a user turn.
func splitSystem(messages []domain.ChatMessage) ([]anthropic.TextBlockParam, []anthropic.MessageParam) {
	var system []anthropic.TextBlockParam
	turns := make([]anthropic.MessageParam, 0, len(messages))

	for i, m := range messages {
		switch {
		case i == 0 && m.Role == domain.RoleSystem:
			system = []anthropic.TextBlockParam{{Text: m.Content}}
		case m.Role == domain.RoleAssistant:
			turns = append(turns, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	return system, turns
}
