package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/cardman/internal/storage"
	"github.com/iudanet/cardman/internal/validation"
)

var updateUsage = "Usage: cardman update <card|sheet> <id>"

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("missing arguments. %s", updateUsage)
	}

	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	switch args[0] {
	case "card":
		return c.runUpdateCard(ctx, id)
	case "sheet", "spreadsheet":
		return c.runUpdateSheet(ctx, id)
	default:
		return fmt.Errorf("unknown record type: %s. %s", args[0], updateUsage)
	}
}

func (c *Cli) runUpdateCard(ctx context.Context, id int64) error {
	card, err := c.store.GetCard(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return fmt.Errorf("card %d not found", id)
		}
		return fmt.Errorf("failed to get card: %w", err)
	}

	c.io.Printf("=== Update Card %d ===\n", id)
	c.io.Println()
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	// id и code неизменяемы; остальные поля перезаписываются целиком
	fields := []struct {
		value *string
		label string
	}{
		{value: &card.Name, label: "Name"},
		{value: &card.Gender, label: "Gender"},
		{value: &card.Phone, label: "Phone"},
		{value: &card.Email, label: "Email"},
		{value: &card.Address, label: "Address"},
		{value: &card.Birthday, label: "Birthday"},
		{value: &card.Notes, label: "Notes"},
	}

	for _, f := range fields {
		input, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", f.label, *f.value))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.label, err)
		}
		if input != "" {
			*f.value = input
		}
	}

	if err := validation.ValidateCardName(card.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	rows, err := c.store.UpdateCard(ctx, card)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}
	if rows == 0 {
		// Карточка исчезла между чтением и записью: ноль затронутых
		// строк — не ошибка, последняя запись выигрывает
		c.io.Println("Nothing updated.")
		return nil
	}

	c.io.Println()
	c.io.Println("✓ Card updated.")

	return nil
}

func (c *Cli) runUpdateSheet(ctx context.Context, id int64) error {
	sheet, err := c.store.GetSpreadsheet(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSpreadsheetNotFound) {
			return fmt.Errorf("spreadsheet %d not found", id)
		}
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	c.io.Printf("=== Update Spreadsheet %d (%s) ===\n", id, sheet.Name)
	c.io.Println()

	data, err := c.readSheetRows()
	if err != nil {
		return err
	}

	sheet.Data = data

	rows, err := c.store.UpdateSpreadsheet(ctx, sheet)
	if err != nil {
		return fmt.Errorf("failed to update spreadsheet: %w", err)
	}
	if rows == 0 {
		c.io.Println("Nothing updated.")
		return nil
	}

	c.io.Println()
	c.io.Println("✓ Spreadsheet saved.")

	return nil
}
