package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/authgate/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	// Сначала снимаем сессию на сервере; если access токен уже
	// протух, пробуем обновить пару, чтобы logout прошел
	accessToken := session.AccessToken
	if !session.AccessValid() && session.RefreshValid() {
		if data, err := c.apiClient.Refresh(ctx, session.RefreshToken); err == nil {
			accessToken = data.AccessToken
		}
	}

	if err := c.apiClient.Logout(ctx, accessToken); err != nil {
		c.io.Printf("Warning: server logout failed: %v\n", err)
	}

	if err := c.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("Logged out")

	return nil
}
