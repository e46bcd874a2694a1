package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cardman/internal/session"
)

func (c *Cli) runResetPin(ctx context.Context) error {
	c.io.Println("=== Security Question ===")
	c.io.Println()
	c.io.Printf("%s?\n", c.sessions.Question())

	answer, err := c.io.ReadInput("Enter answer: ")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	ok, err := c.sessions.ResetPin(ctx, answer)
	if err != nil {
		return fmt.Errorf("failed to reset PIN: %w", err)
	}

	if !ok {
		return fmt.Errorf("incorrect answer")
	}

	c.io.Println()
	c.io.Printf("PIN reset to default: %s\n", session.DefaultPin)

	return nil
}
