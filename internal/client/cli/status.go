package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/authgate/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.io.Printf("Logged in as: %s\n", session.Login)
	if session.UserID != "" {
		c.io.Printf("User ID:      %s\n", session.UserID)
	}
	c.io.Printf("Access token:  %s\n", tokenState(session.AccessValid(), session.AccessExpiresAt))
	c.io.Printf("Refresh token: %s\n", tokenState(session.RefreshValid(), session.RefreshExpiresAt))

	if !session.RefreshValid() {
		c.io.Println("Session expired, use 'login' to authenticate again")
	} else if !session.AccessValid() {
		c.io.Println("Use 'refresh' to obtain a new token pair")
	}

	return nil
}

func tokenState(valid bool, expiresAt int64) string {
	expires := time.Unix(expiresAt, 0).Format(time.RFC3339)
	if valid {
		return fmt.Sprintf("valid until %s", expires)
	}
	return fmt.Sprintf("expired at %s", expires)
}
