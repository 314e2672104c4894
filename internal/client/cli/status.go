package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aemlabs/aemdash/internal/client/storage"
)

func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	// Сессия
	_, err := c.sessionStore.Token(ctx)
	switch {
	case err == nil:
		c.io.Println("Session:         active (token stored)")
	case errors.Is(err, storage.ErrSessionNotFound):
		c.io.Println("Session:         not logged in")
	default:
		return fmt.Errorf("failed to read session: %w", err)
	}

	// Кеш дашборда
	snapshot, err := c.dashCache.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to read dashboard cache: %w", err)
	}
	if snapshot == nil {
		c.io.Println("Dashboard cache: empty")
	} else {
		age := time.Since(snapshot.CachedTime()).Round(time.Second)
		c.io.Printf("Dashboard cache: cached %s ago (%s)\n", age, snapshot.CachedTime().Format(time.RFC1123))
	}

	return nil
}
