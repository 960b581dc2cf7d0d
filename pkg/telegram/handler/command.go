package handler

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// isCommand reports whether the update carries exactly the given command.
// Telegram appends "@botname" in group chats; that suffix is ignored.
func isCommand(update *tgbotapi.Update, command string) bool {
	if update.Message == nil || update.Message.Text == "" {
		return false
	}

	fields := strings.Fields(update.Message.Text)
	if len(fields) == 0 {
		return false
	}

	name, _, _ := strings.Cut(fields[0], "@")
	return name == command
}

// commandArgs returns everything after the command itself, split on spaces.
func commandArgs(update *tgbotapi.Update) []string {
	fields := strings.Fields(update.Message.Text)
	if len(fields) < 2 {
		return nil
	}
	return fields[1:]
}
