package telegram

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
	"github.com/okhramov/llm-telegram-bot/pkg/logger"
	"github.com/okhramov/llm-telegram-bot/pkg/render"
)

type client struct {
	bot       *tgbotapi.BotAPI
	updatesCh tgbotapi.UpdatesChannel
}

func NewClient(token string) (*client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %w", err)
	}

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return &client{
		bot:       bot,
		updatesCh: bot.GetUpdatesChan(u),
	}, nil
}

func (c *client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updatesCh
}

// SendResponse delivers a handler response. Errors become a user-facing
// description rather than a dropped update. Replies are rendered as HTML;
// if Telegram rejects the markup (model output is not always valid
// markdown) the text is re-sent verbatim.
func (c *client) SendResponse(response *domain.Response) {
	text := response.Text
	if response.Err != nil {
		slog.Error("handler failed", "chatID", response.ChatID, logger.Err(response.Err))
		text = "Sorry, I encountered an error: " + response.Err.Error()
	}
	if text == "" {
		return
	}

	msg := tgbotapi.NewMessage(response.ChatID, render.ToHTML(text))
	msg.ReplyToMessageID = response.ReplyToMessageID
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := c.bot.Send(msg); err != nil {
		plain := tgbotapi.NewMessage(response.ChatID, text)
		plain.ReplyToMessageID = response.ReplyToMessageID
		if _, err := c.bot.Send(plain); err != nil {
			slog.Error("sending message", "chatID", response.ChatID, logger.Err(err))
		}
	}
}

func (c *client) StartTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := c.bot.Request(action); err != nil {
		slog.Error("sending typing action", "chatID", chatID, logger.Err(err))
	}
}
