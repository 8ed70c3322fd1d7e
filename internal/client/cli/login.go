package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/authgate/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")

	login, err := c.io.ReadInput("Login: ")
	if err != nil {
		return fmt.Errorf("failed to read login: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	data, err := c.apiClient.Login(ctx, api.LoginRequest{
		Login:    login,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// Логин затирает предыдущую сессию и локально, и на сервере
	if err := c.sessions.SaveSession(ctx, sessionFromTokens(login, data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Printf("Logged in as %s\n", login)

	return nil
}
