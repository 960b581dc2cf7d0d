package digitalocean

import (
	"context"
	"fmt"

	"github.com/digitalocean/godo"
)

type client struct {
	api *godo.Client
}

func NewClient(token string) *client {
	return &client{
		api: godo.NewFromToken(token),
	}
}

// GetBalanceMessage reports the balance of the account hosting the bot.
func (c *client) GetBalanceMessage(ctx context.Context) (string, error) {
	balance, _, err := c.api.Balance.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching balance: %w", err)
	}

	return fmt.Sprintf("Hosting account balance:\n\nMonth-to-date: $%v\nAccount balance: $%v",
		balance.MonthToDateBalance, balance.AccountBalance), nil
}
