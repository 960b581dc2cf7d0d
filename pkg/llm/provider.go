package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

// Provider is the uniform contract every LLM backend adapter conforms to.
// Implementations are stateless beyond their fixed configuration and safe
// for concurrent use; one instance is shared by all chats for the process
// lifetime.
type Provider interface {
	GenerateResponse(ctx context.Context, messages []domain.ChatMessage, settings domain.GenerationSettings) (string, error)
}

// Config selects and parameterizes one backend. It is immutable after
// construction.
type Config struct {
	Kind    string
	APIKey  string
	Model   string
	BaseURL string
}

// NewProvider is the sole extension point for backends: it dispatches on
// Kind (case-insensitive) and returns a long-lived Provider. Adding a
// backend means adding one adapter and one case here; callers never change.
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Kind) {
	case "openai":
		return NewOpenAI(cfg)
	case "anthropic":
		return NewAnthropic(cfg)
	case "openrouter", "router":
		return NewOpenRouter(cfg)
	case "local":
		return NewLocal(cfg)
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unsupported provider kind %q", cfg.Kind)}
	}
}
