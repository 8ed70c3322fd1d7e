package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/authgate/internal/client/storage"
)

func (c *Cli) runRefresh(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not logged in, use 'login' first")
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if !session.RefreshValid() {
		return fmt.Errorf("refresh token expired, use 'login' to authenticate again")
	}

	data, err := c.apiClient.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	// Старая пара токенов после ротации недействительна
	if err := c.sessions.SaveSession(ctx, sessionFromTokens(session.Login, data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println("Tokens refreshed")

	return nil
}
