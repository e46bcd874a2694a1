package storage

import (
	"context"

	"github.com/iudanet/cardman/internal/models"
)

// CardStorage defines interface for card persistence
type CardStorage interface {
	// CreateCard inserts a new card and returns the assigned id.
	// The code column is declared UNIQUE at the schema level but is not
	// pre-checked here: a duplicate code surfaces as a storage error.
	CreateCard(ctx context.Context, card *models.Card) (int64, error)

	// GetCard retrieves a card by id.
	// Returns ErrCardNotFound if no such row exists.
	GetCard(ctx context.Context, id int64) (*models.Card, error)

	// ListCards returns all cards sorted by name ascending.
	// An empty store yields an empty slice, not an error.
	ListCards(ctx context.Context) ([]models.Card, error)

	// UpdateCard overwrites the full row matched by card.ID and returns
	// the number of affected rows. A missing id yields 0, not an error.
	UpdateCard(ctx context.Context, card *models.Card) (int64, error)

	// DeleteCard removes the row matched by id. Deleting a missing id is
	// a silent no-op. Associated media rows are NOT cascade-deleted.
	DeleteCard(ctx context.Context, id int64) error
}
