package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/cardman/internal/models"
	"github.com/iudanet/cardman/internal/storage"
)

// CreateCard inserts a new card and returns the assigned id.
// Code uniqueness is NOT pre-checked: the UNIQUE constraint declared in the
// schema surfaces a duplicate as an insert error.
func (s *Storage) CreateCard(ctx context.Context, card *models.Card) (int64, error) {
	query := `
		INSERT INTO cards (code, name, gender, phone, email, address, photo, id_front, id_back, notes, birthday)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		card.Code,
		card.Name,
		card.Gender,
		card.Phone,
		card.Email,
		card.Address,
		card.Photo,
		card.IDFront,
		card.IDBack,
		card.Notes,
		card.Birthday,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

// GetCard retrieves a card by id
func (s *Storage) GetCard(ctx context.Context, id int64) (*models.Card, error) {
	query := `
		SELECT id, code, name, gender, phone, email, address, photo, id_front, id_back, notes, birthday
		FROM cards
		WHERE id = ?
	`

	card := &models.Card{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID,
		&card.Code,
		&card.Name,
		&card.Gender,
		&card.Phone,
		&card.Email,
		&card.Address,
		&card.Photo,
		&card.IDFront,
		&card.IDBack,
		&card.Notes,
		&card.Birthday,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return card, nil
}

// ListCards returns all cards sorted by name ascending.
// An empty store yields an empty slice, not an error.
func (s *Storage) ListCards(ctx context.Context) ([]models.Card, error) {
	query := `
		SELECT id, code, name, gender, phone, email, address, photo, id_front, id_back, notes, birthday
		FROM cards
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	cards := []models.Card{}

	for rows.Next() {
		var card models.Card
		if err := rows.Scan(
			&card.ID,
			&card.Code,
			&card.Name,
			&card.Gender,
			&card.Phone,
			&card.Email,
			&card.Address,
			&card.Photo,
			&card.IDFront,
			&card.IDBack,
			&card.Notes,
			&card.Birthday,
		); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}

// UpdateCard overwrites the full row matched by card.ID and returns the
// number of affected rows. A missing id yields 0 affected rows, not an error.
func (s *Storage) UpdateCard(ctx context.Context, card *models.Card) (int64, error) {
	query := `
		UPDATE cards
		SET code = ?, name = ?, gender = ?, phone = ?, email = ?, address = ?,
		    photo = ?, id_front = ?, id_back = ?, notes = ?, birthday = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		card.Code,
		card.Name,
		card.Gender,
		card.Phone,
		card.Email,
		card.Address,
		card.Photo,
		card.IDFront,
		card.IDBack,
		card.Notes,
		card.Birthday,
		card.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// DeleteCard removes the row matched by id. Deleting a missing id is a
// silent no-op. Media rows owned by the card are NOT cascade-deleted.
func (s *Storage) DeleteCard(ctx context.Context, id int64) error {
	query := `DELETE FROM cards WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}
