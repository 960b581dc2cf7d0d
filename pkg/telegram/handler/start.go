package handler

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type StartChatService interface {
	StartNewChat(ctx context.Context, chatID int64)
}

type start struct {
	chats StartChatService
	outCh chan<- domain.Response
}

func NewStart(chats StartChatService, outCh chan<- domain.Response) *start {
	return &start{
		chats: chats,
		outCh: outCh,
	}
}

func (s *start) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "/start")
}

func (s *start) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	s.chats.StartNewChat(ctx, chatID)

	s.outCh <- domain.Response{
		ChatID: chatID,
		Text:   "👋 Hi! I'm ready to chat. Use /help to see available commands.",
	}
}
