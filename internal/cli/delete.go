package cli

import (
	"context"
	"fmt"
	"strings"
)

var deleteUsage = "Usage: cardman delete <card|sheet|media> <id>"

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("missing arguments. %s", deleteUsage)
	}

	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	var kind string
	switch args[0] {
	case "card":
		kind = "card"
	case "sheet", "spreadsheet":
		kind = "spreadsheet"
	case "media":
		kind = "media"
	default:
		return fmt.Errorf("unknown record type: %s. %s", args[0], deleteUsage)
	}

	confirm, err := c.io.ReadInput(fmt.Sprintf("Delete %s %d? (y/N): ", kind, id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(confirm, "y") {
		c.io.Println("Cancelled.")
		return nil
	}

	// Удаление несуществующего id — тихий no-op на уровне хранилища
	switch kind {
	case "card":
		// Вложения карточки не удаляются каскадно и остаются сиротами
		err = c.store.DeleteCard(ctx, id)
	case "spreadsheet":
		err = c.store.DeleteSpreadsheet(ctx, id)
	case "media":
		err = c.store.DeleteMedia(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}

	c.io.Printf("✓ Deleted %s %d.\n", kind, id)

	return nil
}
