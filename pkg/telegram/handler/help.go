package handler

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

const helpText = `Available commands:
/start — start or restart the conversation
/help — show this message
/clear — clear the conversation history
/prompt <name> — use a saved prompt as the system message
/prompts — list available prompts
/addprompt <name> <text> — save or update a prompt`

type help struct {
	text  string
	outCh chan<- domain.Response
}

// NewHelp lists the always-registered commands plus entries for handlers
// that exist only in some configurations, so /help never advertises a
// command no handler claims.
func NewHelp(outCh chan<- domain.Response, extraCommands ...string) *help {
	return &help{
		text:  strings.Join(append([]string{helpText}, extraCommands...), "\n"),
		outCh: outCh,
	}
}

func (h *help) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "/help")
}

func (h *help) Handle(_ context.Context, update *tgbotapi.Update) {
	h.outCh <- domain.Response{
		ChatID: update.Message.Chat.ID,
		Text:   h.text,
	}
}
