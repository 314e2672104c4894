package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	result, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	if result.FromCache {
		// Пользователь должен видеть, что вход прошел без сети
		c.io.Println("Note: you are logged in OFFLINE using cached credentials.")
	}

	return nil
}
