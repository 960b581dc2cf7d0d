package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler interface {
	CanHandle(update *tgbotapi.Update) bool
	Handle(ctx context.Context, update *tgbotapi.Update)
}

// router dispatches an update to the first handler that claims it, so
// registration order matters: the free-text chat handler goes last.
type router struct {
	handlers []Handler
}

func NewRouter(handlers []Handler) *router {
	return &router{
		handlers: handlers,
	}
}

func (r *router) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	for _, h := range r.handlers {
		if h.CanHandle(update) {
			h.Handle(ctx, update)
			return
		}
	}
}
