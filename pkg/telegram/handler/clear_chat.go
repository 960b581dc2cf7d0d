package handler

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type ClearChatService interface {
	StartNewChat(ctx context.Context, chatID int64)
}

type clearChat struct {
	chats ClearChatService
	outCh chan<- domain.Response
}

func NewClearChat(chats ClearChatService, outCh chan<- domain.Response) *clearChat {
	return &clearChat{
		chats: chats,
		outCh: outCh,
	}
}

func (c *clearChat) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "/clear")
}

func (c *clearChat) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	c.chats.StartNewChat(ctx, chatID)

	c.outCh <- domain.Response{
		ChatID: chatID,
		Text:   "🧹 Conversation history has been cleared.",
	}
}
