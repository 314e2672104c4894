package cli

import (
	"context"
	"fmt"

	"github.com/aemlabs/aemdash/internal/client/auth"
)

func (c *Cli) RunLogout(ctx context.Context, opts auth.LogoutOptions) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(ctx, opts); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	switch {
	case opts.WipeAll:
		c.io.Println("All offline data has been removed.")
	case opts.WipeCredentials:
		c.io.Println("Cached credentials have been removed.")
	}

	return nil
}
