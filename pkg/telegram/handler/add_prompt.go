package handler

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type AddPromptService interface {
	SavePrompt(ctx context.Context, name, content string) error
}

type addPrompt struct {
	prompts AddPromptService
	outCh   chan<- domain.Response
}

func NewAddPrompt(prompts AddPromptService, outCh chan<- domain.Response) *addPrompt {
	return &addPrompt{
		prompts: prompts,
		outCh:   outCh,
	}
}

func (a *addPrompt) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "/addprompt")
}

func (a *addPrompt) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	parts := strings.SplitN(update.Message.Text, " ", 3)
	if len(parts) < 3 || strings.TrimSpace(parts[2]) == "" {
		a.outCh <- domain.Response{
			ChatID: chatID,
			Text:   "Usage: /addprompt <name> <text>",
		}
		return
	}

	name, content := parts[1], strings.TrimSpace(parts[2])
	if err := a.prompts.SavePrompt(ctx, name, content); err != nil {
		a.outCh <- domain.Response{ChatID: chatID, Err: err}
		return
	}

	a.outCh <- domain.Response{
		ChatID: chatID,
		Text:   fmt.Sprintf("Prompt %q saved.", name),
	}
}
