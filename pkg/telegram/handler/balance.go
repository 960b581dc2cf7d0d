package handler

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

// BalanceHelp is the /balance entry for the help text; the handler is only
// registered when a hosting token is configured.
const BalanceHelp = "/balance — show the hosting account balance"

type BalanceProvider interface {
	GetBalanceMessage(ctx context.Context) (string, error)
}

type balance struct {
	provider BalanceProvider
	outCh    chan<- domain.Response
}

func NewBalance(provider BalanceProvider, outCh chan<- domain.Response) *balance {
	return &balance{
		provider: provider,
		outCh:    outCh,
	}
}

func (b *balance) CanHandle(update *tgbotapi.Update) bool {
	return isCommand(update, "/balance")
}

func (b *balance) Handle(ctx context.Context, update *tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	message, err := b.provider.GetBalanceMessage(ctx)
	if err != nil {
		b.outCh <- domain.Response{ChatID: chatID, Err: fmt.Errorf("fetching hosting balance: %w", err)}
		return
	}

	b.outCh <- domain.Response{
		ChatID: chatID,
		Text:   message,
	}
}
