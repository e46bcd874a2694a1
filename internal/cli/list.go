package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/cardman/internal/grid"
)

var listUsage = "Usage: cardman list <cards|sheets> | cardman list media <card-id>"

func (c *Cli) runList(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing record type. %s", listUsage)
	}

	switch args[0] {
	case "cards", "card":
		return c.runListCards(ctx)
	case "sheets", "sheet", "spreadsheets":
		return c.runListSheets(ctx)
	case "media":
		return c.runListMedia(ctx, args[1:])
	default:
		return fmt.Errorf("unknown record type: %s. %s", args[0], listUsage)
	}
}

func (c *Cli) runListCards(ctx context.Context) error {
	c.io.Println("=== Cards ===")
	c.io.Println()

	// Отсортированы по имени в хранилище
	cards, err := c.store.ListCards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	if len(cards) == 0 {
		c.io.Println("No cards found.")
		c.io.Println()
		c.io.Println("Use 'cardman add card' to add your first card.")
		return nil
	}

	c.io.Printf("Found %d card(s):\n", len(cards))
	c.io.Println()

	for _, card := range cards {
		c.io.Printf("%d. [%s] %s\n", card.ID, card.Code, card.Name)
		if card.Phone != "" {
			c.io.Printf("   Phone: %s\n", card.Phone)
		}
		if card.Email != "" {
			c.io.Printf("   Email: %s\n", card.Email)
		}
	}

	return nil
}

func (c *Cli) runListSheets(ctx context.Context) error {
	c.io.Println("=== Spreadsheets ===")
	c.io.Println()

	// Отсортированы по времени создания, новые первыми
	sheets, err := c.store.ListSpreadsheets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list spreadsheets: %w", err)
	}

	if len(sheets) == 0 {
		c.io.Println("No spreadsheets found.")
		c.io.Println()
		c.io.Println("Use 'cardman add sheet' to create your first spreadsheet.")
		return nil
	}

	c.io.Printf("Found %d spreadsheet(s):\n", len(sheets))
	c.io.Println()

	for _, sheet := range sheets {
		rows, cols := grid.Dimensions(grid.Parse(sheet.Data))
		created := time.UnixMilli(sheet.CreatedAt).Format("2006-01-02 15:04")
		c.io.Printf("%d. %s (%dx%d, created %s)\n", sheet.ID, sheet.Name, rows, cols, created)
	}

	return nil
}

func (c *Cli) runListMedia(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing card id. %s", listUsage)
	}

	cardID, err := parseID(args[0])
	if err != nil {
		return err
	}

	c.io.Printf("=== Media of card %d ===\n", cardID)
	c.io.Println()

	list, err := c.store.ListMediaByCard(ctx, cardID)
	if err != nil {
		return fmt.Errorf("failed to list media: %w", err)
	}

	if len(list) == 0 {
		c.io.Println("No media found.")
		return nil
	}

	c.io.Printf("Found %d attachment(s):\n", len(list))
	c.io.Println()

	for _, m := range list {
		c.io.Printf("%d. %s (%s, %d bytes base64)\n", m.ID, m.Name, m.Type, len(m.Data))
	}

	return nil
}
