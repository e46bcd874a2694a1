package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/cardman/internal/grid"
	"github.com/iudanet/cardman/internal/storage"
)

var getUsage = "Usage: cardman get <card|sheet|media> <id>"

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("missing arguments. %s", getUsage)
	}

	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	switch args[0] {
	case "card":
		return c.runGetCard(ctx, id)
	case "sheet", "spreadsheet":
		return c.runGetSheet(ctx, id)
	case "media":
		return c.runGetMedia(ctx, id)
	default:
		return fmt.Errorf("unknown record type: %s. %s", args[0], getUsage)
	}
}

func (c *Cli) runGetCard(ctx context.Context, id int64) error {
	card, err := c.store.GetCard(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return fmt.Errorf("card %d not found", id)
		}
		return fmt.Errorf("failed to get card: %w", err)
	}

	tmpl, err := template.New("card").Parse(cardTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, card); err != nil {
		return fmt.Errorf("failed to render card: %w", err)
	}
	c.io.Println(buf.String())

	// Разрешаем handle-ссылки карточки во вложения
	for _, handle := range []string{card.Photo, card.IDFront, card.IDBack} {
		if handle == "" {
			continue
		}
		media, err := c.store.GetMediaByName(ctx, handle)
		if err != nil {
			if errors.Is(err, storage.ErrMediaNotFound) {
				// Ссылка без байтов допустима: handle — просто строка
				c.io.Printf("  (no stored media for handle %s)\n", handle)
				continue
			}
			return fmt.Errorf("failed to resolve media handle: %w", err)
		}
		c.io.Printf("  attachment %s: %s, %d bytes base64\n", handle, media.Type, len(media.Data))
	}

	return nil
}

func (c *Cli) runGetSheet(ctx context.Context, id int64) error {
	sheet, err := c.store.GetSpreadsheet(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSpreadsheetNotFound) {
			return fmt.Errorf("spreadsheet %d not found", id)
		}
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	created := time.UnixMilli(sheet.CreatedAt).Format("2006-01-02 15:04")
	c.io.Printf("=== %s (created %s) ===\n", sheet.Name, created)
	c.io.Println()

	// Превью сетки: ячейки обрезаются по пробелам, как в исходном просмотре
	for _, row := range grid.Parse(sheet.Data) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.TrimSpace(cell)
		}
		c.io.Printf("| %s |\n", strings.Join(cells, " | "))
	}

	return nil
}

func (c *Cli) runGetMedia(ctx context.Context, id int64) error {
	media, err := c.store.GetMedia(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrMediaNotFound) {
			return fmt.Errorf("media %d not found", id)
		}
		return fmt.Errorf("failed to get media: %w", err)
	}

	tmpl, err := template.New("media").Parse(mediaTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, media); err != nil {
		return fmt.Errorf("failed to render media: %w", err)
	}
	c.io.Println(buf.String())

	return nil
}
