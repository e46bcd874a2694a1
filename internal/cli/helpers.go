package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/iudanet/cardman/internal/models"
)

// parseID разбирает числовой идентификатор записи из аргумента команды
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: expected a number", arg)
	}
	return id, nil
}

// importMediaFile читает файл, кодирует его в base64 и сохраняет как
// вложение карточки под сгенерированным handle-именем.
// Возвращенный handle хранится на карточке как непрозрачная ссылка.
func (c *Cli) importMediaFile(ctx context.Context, cardID int64, path, mediaType string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	handle := uuid.New().String()

	_, err = c.store.CreateMedia(ctx, &models.Media{
		CardID: cardID,
		Name:   handle,
		Type:   mediaType,
		Data:   base64.StdEncoding.EncodeToString(content),
	})
	if err != nil {
		return "", fmt.Errorf("failed to save media: %w", err)
	}

	return handle, nil
}

// readSheetRows читает строки таблицы до одиночной точки-ограничителя.
// Каждая введенная строка — строка сетки: ячейки разделяются запятыми.
func (c *Cli) readSheetRows() (string, error) {
	c.io.Println("Enter rows (cells separated by commas).")
	c.io.Println("Finish with a single '.' on its own line:")

	var data string
	first := true

	for {
		line, err := c.io.ReadInput("")
		if err != nil {
			return "", fmt.Errorf("failed to read row: %w", err)
		}
		if line == "." {
			break
		}

		if first {
			data = line
			first = false
		} else {
			data += "\n" + line
		}
	}

	return data, nil
}
