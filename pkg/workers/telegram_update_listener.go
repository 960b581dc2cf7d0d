package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
	"github.com/okhramov/llm-telegram-bot/pkg/logger"
)

type Handler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

type Authenticator interface {
	IsAuthorized(userID int64) bool
}

type TelegramClient interface {
	GetUpdates() tgbotapi.UpdatesChannel
	SendResponse(response *domain.Response)
	StartTyping(chatID int64)
}

// telegramUpdateListener pumps Telegram updates into the handler chain and
// drains handler responses back to Telegram. Each update runs in its own
// goroutine; per-chat ordering is the chat service's job.
type telegramUpdateListener struct {
	client        TelegramClient
	authenticator Authenticator
	handler       Handler
	responseCh    <-chan domain.Response
	wg            sync.WaitGroup
}

func NewTelegramUpdateListener(
	client TelegramClient,
	authenticator Authenticator,
	handler Handler,
	responseCh <-chan domain.Response,
) (*telegramUpdateListener, error) {
	return &telegramUpdateListener{
		client:        client,
		authenticator: authenticator,
		handler:       handler,
		responseCh:    responseCh,
	}, nil
}

func (t *telegramUpdateListener) Name() string { return "telegram_update_listener" }

func (t *telegramUpdateListener) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", t.Name())
	defer slog.Info("Worker stopped", "name", t.Name())

	updates := t.client.GetUpdates()

	for {
		select {
		case <-ctx.Done():
			t.drainAndWait()
			return nil
		case update := <-updates:
			t.wg.Add(1)
			go func(update tgbotapi.Update) {
				defer t.wg.Done()
				t.processUpdate(ctx, &update)
			}(update)
		case response := <-t.responseCh:
			t.client.SendResponse(&response)
		}
	}
}

// drainAndWait keeps delivering responses until every in-flight update
// goroutine finishes. A handler mid-send on the unbuffered response channel
// would otherwise block forever and hang the shutdown.
func (t *telegramUpdateListener) drainAndWait() {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	for {
		select {
		case response := <-t.responseCh:
			t.client.SendResponse(&response)
		case <-done:
			return
		}
	}
}

func (t *telegramUpdateListener) processUpdate(ctx context.Context, update *tgbotapi.Update) {
	ctx = logger.ContextWithRequestID(ctx, int64(update.UpdateID))

	if update.Message == nil || update.Message.From == nil {
		slog.WarnContext(ctx, "Skipping unsupported update type")
		return
	}

	chatID, userID := update.Message.Chat.ID, update.Message.From.ID

	slog.InfoContext(ctx, "Processing update", "chatID", chatID, "userID", userID)

	if !t.authenticator.IsAuthorized(userID) {
		slog.WarnContext(ctx, "Unauthorized access attempt", "userID", userID)
		t.client.SendResponse(&domain.Response{
			ChatID: chatID,
			Text:   fmt.Sprintf("User ID %d is not authorized", userID),
		})
		return
	}

	t.client.StartTyping(chatID)

	t.handler.HandleUpdate(ctx, update)
}
