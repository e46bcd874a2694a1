package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/cardman/internal/models"
	"github.com/iudanet/cardman/internal/storage"
)

// CreateMedia inserts a new attachment with the creation stamp set to
// current time (epoch milliseconds) and returns the assigned id.
// card_id is NOT validated against the cards table: the foreign key is
// declared in the schema only.
func (s *Storage) CreateMedia(ctx context.Context, media *models.Media) (int64, error) {
	query := `
		INSERT INTO media (card_id, name, type, data, created_date)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		media.CardID,
		media.Name,
		media.Type,
		media.Data,
		time.Now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert media: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

// GetMedia retrieves an attachment by id
func (s *Storage) GetMedia(ctx context.Context, id int64) (*models.Media, error) {
	query := `
		SELECT id, card_id, name, type, data, created_date
		FROM media
		WHERE id = ?
	`

	return s.scanMediaRow(s.db.QueryRowContext(ctx, query, id))
}

// GetMediaByName retrieves an attachment by its handle name.
// If several rows share the name, the newest one wins.
func (s *Storage) GetMediaByName(ctx context.Context, name string) (*models.Media, error) {
	query := `
		SELECT id, card_id, name, type, data, created_date
		FROM media
		WHERE name = ?
		ORDER BY created_date DESC
		LIMIT 1
	`

	return s.scanMediaRow(s.db.QueryRowContext(ctx, query, name))
}

// ListMediaByCard returns all attachments owned by the given card,
// sorted by creation stamp descending.
func (s *Storage) ListMediaByCard(ctx context.Context, cardID int64) ([]models.Media, error) {
	query := `
		SELECT id, card_id, name, type, data, created_date
		FROM media
		WHERE card_id = ?
		ORDER BY created_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query media: %w", err)
	}
	defer rows.Close()

	list := []models.Media{}

	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.CardID, &m.Name, &m.Type, &m.Data, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan media: %w", err)
		}
		list = append(list, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate media: %w", err)
	}

	return list, nil
}

// DeleteMedia removes the row matched by id.
// Deleting a missing id is a silent no-op.
func (s *Storage) DeleteMedia(ctx context.Context, id int64) error {
	query := `DELETE FROM media WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}

	return nil
}

// scanMediaRow читает одну строку media из результата запроса
func (s *Storage) scanMediaRow(row *sql.Row) (*models.Media, error) {
	media := &models.Media{}

	err := row.Scan(
		&media.ID,
		&media.CardID,
		&media.Name,
		&media.Type,
		&media.Data,
		&media.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}

	return media, nil
}
