package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	authenticated, err := c.sessions.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !authenticated {
		c.io.Println("Status: Locked")
		c.io.Println()
		c.io.Println("Run 'cardman login' to unlock.")
		return nil
	}

	c.io.Println("Status: Unlocked")

	// Сводка по хранилищу
	cards, err := c.store.ListCards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}
	sheets, err := c.store.ListSpreadsheets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list spreadsheets: %w", err)
	}

	c.io.Println()
	c.io.Printf("Cards:        %d\n", len(cards))
	c.io.Printf("Spreadsheets: %d\n", len(sheets))

	return nil
}
