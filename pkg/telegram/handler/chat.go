package handler

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type ChatService interface {
	Reply(ctx context.Context, chatID int64, text string) (string, error)
}

// chat relays free-form text to the LLM. It must be registered after the
// command handlers: it claims any non-command text message.
type chat struct {
	chats ChatService
	outCh chan<- domain.Response
}

func NewChat(chats ChatService, outCh chan<- domain.Response) *chat {
	return &chat{
		chats: chats,
		outCh: outCh,
	}
}

func (c *chat) CanHandle(update *tgbotapi.Update) bool {
	return update.Message != nil &&
		update.Message.Text != "" &&
		!strings.HasPrefix(update.Message.Text, "/")
}

func (c *chat) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	reply, err := c.chats.Reply(ctx, chatID, update.Message.Text)
	if err != nil {
		c.outCh <- domain.Response{ChatID: chatID, Err: err}
		return
	}

	c.outCh <- domain.Response{
		ChatID:           chatID,
		ReplyToMessageID: update.Message.MessageID,
		Text:             reply,
	}
}
