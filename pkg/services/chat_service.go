package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type SessionRepository interface {
	Save(chat domain.Chat)
	GetByID(chatID int64) (domain.Chat, bool)
	Clear(chatID int64)
}

type PromptRepository interface {
	Get(name string) (string, bool)
	List() map[string]string
	AddOrUpdate(ctx context.Context, name, content string) error
}

type Provider interface {
	GenerateResponse(ctx context.Context, messages []domain.ChatMessage, settings domain.GenerationSettings) (string, error)
}

const (
	defaultMaxHistoryPairs = 10
	replyTemperature       = 0.7
)

// chatService owns the per-chat conversation loop: it keeps message[0] a
// unique system message, bounds the history, and mediates between incoming
// text, the provider and the reply path. Updates for one chat may arrive
// concurrently, so every mutating operation runs under that chat's lock.
type chatService struct {
	sessions SessionRepository
	prompts  PromptRepository
	provider Provider
	maxPairs int

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewChatService(
	sessions SessionRepository,
	prompts PromptRepository,
	provider Provider,
	maxHistoryPairs int,
) *chatService {
	return &chatService{
		sessions: sessions,
		prompts:  prompts,
		provider: provider,
		maxPairs: lo.Ternary(maxHistoryPairs > 0, maxHistoryPairs, defaultMaxHistoryPairs),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Reply records a user turn, asks the provider for a completion and records
// the assistant turn. When the provider fails, the user turn stays in
// history (it reflects what was actually sent) and the error propagates;
// the session remains usable.
func (c *chatService) Reply(ctx context.Context, chatID int64, text string) (string, error) {
	lock := c.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	chat := c.ensureInitialized(chatID)

	chat.Messages = append(chat.Messages, domain.ChatMessage{Role: domain.RoleUser, Content: text})
	chat.Messages = c.trim(chat.Messages)

	slog.InfoContext(ctx, "Requesting completion", "chatID", chatID, "messagesCount", len(chat.Messages))

	reply, err := c.provider.GenerateResponse(ctx, chat.Messages, domain.GenerationSettings{
		Temperature: replyTemperature,
	})
	if err != nil {
		c.sessions.Save(chat)
		return "", fmt.Errorf("generating response: %w", err)
	}

	chat.Messages = append(chat.Messages, domain.ChatMessage{Role: domain.RoleAssistant, Content: reply})
	c.sessions.Save(chat)

	return reply, nil
}

// StartNewChat drops the history and re-seeds the session with the default
// system prompt. Safe to call on a chat that was never initialized.
func (c *chatService) StartNewChat(ctx context.Context, chatID int64) {
	lock := c.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	slog.InfoContext(ctx, "Resetting chat", "chatID", chatID)

	c.sessions.Save(c.newChat(chatID))
}

// SetSystemPrompt replaces the session's system message with the named
// template. An unknown name returns domain.ErrPromptNotFound and leaves the
// session untouched.
func (c *chatService) SetSystemPrompt(ctx context.Context, chatID int64, name string) error {
	content, ok := c.prompts.Get(name)
	if !ok {
		return fmt.Errorf("prompt %q: %w", name, domain.ErrPromptNotFound)
	}

	lock := c.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	systemMessage := domain.ChatMessage{Role: domain.RoleSystem, Content: content}

	chat, exists := c.sessions.GetByID(chatID)
	switch {
	case !exists || len(chat.Messages) == 0:
		chat = domain.Chat{ID: chatID, Messages: []domain.ChatMessage{systemMessage}}
	case chat.Messages[0].Role == domain.RoleSystem:
		chat.Messages[0] = systemMessage
	default:
		chat.Messages = append([]domain.ChatMessage{systemMessage}, chat.Messages...)
	}
	c.sessions.Save(chat)

	return nil
}

func (c *chatService) ListPrompts() map[string]string {
	return c.prompts.List()
}

func (c *chatService) SavePrompt(ctx context.Context, name, content string) error {
	return c.prompts.AddOrUpdate(ctx, name, content)
}

// ensureInitialized returns the live session, creating one seeded with the
// default prompt when none exists. Idempotent for an active session.
func (c *chatService) ensureInitialized(chatID int64) domain.Chat {
	if chat, ok := c.sessions.GetByID(chatID); ok && len(chat.Messages) > 0 {
		return chat
	}
	return c.newChat(chatID)
}

func (c *chatService) newChat(chatID int64) domain.Chat {
	content, ok := c.prompts.Get(domain.DefaultPromptName)
	if !ok || content == "" {
		content = domain.DefaultSystemPrompt
	}

	return domain.Chat{
		ID:       chatID,
		Messages: []domain.ChatMessage{{Role: domain.RoleSystem, Content: content}},
	}
}

// trim bounds the history to maxPairs turn pairs. The system message is
// kept unconditionally; the non-system tail keeps its most recent
// 2*maxPairs entries in order, so the just-appended user turn always
// survives.
func (c *chatService) trim(messages []domain.ChatMessage) []domain.ChatMessage {
	if len(messages) == 0 || messages[0].Role != domain.RoleSystem {
		return messages
	}

	system, tail := messages[0], messages[1:]

	maxTail := c.maxPairs * 2
	if len(tail) > maxTail {
		tail = tail[len(tail)-maxTail:]
	}

	return append([]domain.ChatMessage{system}, tail...)
}

func (c *chatService) chatLock(chatID int64) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[chatID] = lock
	}
	return lock
}
