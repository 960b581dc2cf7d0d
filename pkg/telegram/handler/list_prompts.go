package handler

import (
	"context"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type ListPromptsService interface {
	ListPrompts() map[string]string
}

type listPrompts struct {
	prompts ListPromptsService
	outCh   chan<- domain.Response
}

func NewListPrompts(prompts ListPromptsService, outCh chan<- domain.Response) *listPrompts {
	return &listPrompts{
		prompts: prompts,
		outCh:   outCh,
	}
}

func (l *listPrompts) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "/prompts")
}

func (l *listPrompts) Handle(_ context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	prompts := l.prompts.ListPrompts()
	if len(prompts) == 0 {
		l.outCh <- domain.Response{
			ChatID: chatID,
			Text:   "No prompts available. Use /addprompt to save one.",
		}
		return
	}

	names := lo.Keys(prompts)
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "- "+name)
	}

	l.outCh <- domain.Response{
		ChatID: chatID,
		Text:   "Available prompts:\n" + strings.Join(lines, "\n"),
	}
}
