package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cardman/internal/grid"
	"github.com/iudanet/cardman/internal/models"
	"github.com/iudanet/cardman/internal/validation"
)

var addUsage = "Usage: cardman add <card|sheet|media>"

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing record type. %s", addUsage)
	}

	switch args[0] {
	case "card":
		return c.runAddCard(ctx)
	case "sheet", "spreadsheet":
		return c.runAddSheet(ctx)
	case "media":
		return c.runAddMedia(ctx)
	default:
		return fmt.Errorf("unknown record type: %s. %s", args[0], addUsage)
	}
}

func (c *Cli) runAddCard(ctx context.Context) error {
	c.io.Println("=== Add Card ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name (required): ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	// Имя — единственное обязательное поле; проверяется здесь,
	// до обращения к хранилищу
	if err := validation.ValidateCardName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	gender, err := c.io.ReadInput("Gender (male/female): ")
	if err != nil {
		return fmt.Errorf("failed to read gender: %w", err)
	}
	phone, err := c.io.ReadInput("Phone: ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	address, err := c.io.ReadInput("Address: ")
	if err != nil {
		return fmt.Errorf("failed to read address: %w", err)
	}
	birthday, err := c.io.ReadInput("Birthday: ")
	if err != nil {
		return fmt.Errorf("failed to read birthday: %w", err)
	}
	notes, err := c.io.ReadInput("Notes: ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	card := &models.Card{
		Code:     models.NewCardCode(),
		Name:     name,
		Gender:   gender,
		Phone:    phone,
		Email:    email,
		Address:  address,
		Birthday: birthday,
		Notes:    notes,
	}

	id, err := c.store.CreateCard(ctx, card)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	card.ID = id

	// Опциональные изображения: файлы импортируются во вложения,
	// на карточке остаются handle-ссылки
	prompts := []struct {
		field *string
		label string
	}{
		{field: &card.Photo, label: "Photo file path (optional): "},
		{field: &card.IDFront, label: "ID front file path (optional): "},
		{field: &card.IDBack, label: "ID back file path (optional): "},
	}

	imported := false
	for _, p := range prompts {
		path, err := c.io.ReadInput(p.label)
		if err != nil {
			return fmt.Errorf("failed to read file path: %w", err)
		}
		if path == "" {
			continue
		}

		handle, err := c.importMediaFile(ctx, id, path, "image")
		if err != nil {
			return err
		}
		*p.field = handle
		imported = true
	}

	if imported {
		if _, err := c.store.UpdateCard(ctx, card); err != nil {
			return fmt.Errorf("failed to attach images: %w", err)
		}
	}

	c.io.Println()
	c.io.Printf("✓ Card created. ID: %d, code: %s\n", id, card.Code)

	return nil
}

func (c *Cli) runAddSheet(ctx context.Context) error {
	c.io.Println("=== Add Spreadsheet ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name (required): ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	// Новый документ — пустая сетка по умолчанию
	id, err := c.store.CreateSpreadsheet(ctx, name, grid.Default())
	if err != nil {
		return fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Spreadsheet created. ID: %d (%dx%d empty grid)\n", id, grid.DefaultRows, grid.DefaultCols)

	return nil
}

func (c *Cli) runAddMedia(ctx context.Context) error {
	c.io.Println("=== Add Media ===")
	c.io.Println()

	cardArg, err := c.io.ReadInput("Card ID: ")
	if err != nil {
		return fmt.Errorf("failed to read card id: %w", err)
	}
	cardID, err := parseID(cardArg)
	if err != nil {
		return err
	}

	path, err := c.io.ReadInput("File path: ")
	if err != nil {
		return fmt.Errorf("failed to read file path: %w", err)
	}
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	mediaType, err := c.io.ReadInput("Type (image/video) [image]: ")
	if err != nil {
		return fmt.Errorf("failed to read type: %w", err)
	}
	if mediaType == "" {
		mediaType = "image"
	}

	handle, err := c.importMediaFile(ctx, cardID, path, mediaType)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Media attached to card %d. Handle: %s\n", cardID, handle)

	return nil
}
