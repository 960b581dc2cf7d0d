package auth

import (
	"log/slog"

	"github.com/samber/lo"
)

type authenticator struct {
	authorizedUserIDs []int64
}

// NewAuthenticator builds an allowlist check. An empty list means the bot
// is open to everyone.
func NewAuthenticator(authorizedUserIDs []int64) *authenticator {
	slog.Info("telegram authorized user IDs", "userIDs", authorizedUserIDs)

	return &authenticator{
		authorizedUserIDs: authorizedUserIDs,
	}
}

func (a *authenticator) IsAuthorized(userID int64) bool {
	if len(a.authorizedUserIDs) == 0 {
		return true
	}
	return lo.Contains(a.authorizedUserIDs, userID)
}
