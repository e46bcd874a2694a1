package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Card Manager ===")
	c.io.Println()

	// Запрашиваем PIN, пока пользователь не введет верный
	for {
		pin, err := c.io.ReadPassword("Enter your PIN: ")
		if err != nil {
			return fmt.Errorf("failed to read PIN: %w", err)
		}

		ok, err := c.sessions.Verify(ctx, pin)
		if err != nil {
			return fmt.Errorf("failed to verify PIN: %w", err)
		}

		if ok {
			break
		}

		// Неверный PIN: состояние не изменилось, повторяем запрос
		c.io.Println("Invalid PIN. Please try again.")
	}

	c.io.Println()
	c.io.Println("✓ Unlocked.")

	return nil
}
