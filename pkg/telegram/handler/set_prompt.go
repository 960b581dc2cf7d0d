package handler

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type SetPromptChatService interface {
	SetSystemPrompt(ctx context.Context, chatID int64, name string) error
}

type setPrompt struct {
	chats SetPromptChatService
	outCh chan<- domain.Response
}

func NewSetPrompt(chats SetPromptChatService, outCh chan<- domain.Response) *setPrompt {
	return &setPrompt{
		chats: chats,
		outCh: outCh,
	}
}

func (s *setPrompt) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "/prompt")
}

func (s *setPrompt) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	args := commandArgs(update)
	if len(args) == 0 {
		s.outCh <- domain.Response{
			ChatID: chatID,
			Text:   "Please provide a prompt name. Use /prompts to see available prompts.",
		}
		return
	}

	name := args[0]
	if err := s.chats.SetSystemPrompt(ctx, chatID, name); err != nil {
		if errors.Is(err, domain.ErrPromptNotFound) {
			s.outCh <- domain.Response{
				ChatID: chatID,
				Text:   fmt.Sprintf("Prompt %q not found. Use /prompts to see available prompts.", name),
			}
			return
		}
		s.outCh <- domain.Response{ChatID: chatID, Err: err}
		return
	}

	s.outCh <- domain.Response{
		ChatID: chatID,
		Text:   fmt.Sprintf("System prompt set to %q.", name),
	}
}
