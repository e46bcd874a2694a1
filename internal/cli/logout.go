package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	c.io.Println("✓ Locked.")
	return nil
}
