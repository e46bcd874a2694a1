package storage

import (
	"context"

	"github.com/iudanet/cardman/internal/models"
)

// MediaStorage defines interface for media attachment persistence.
// The card_id column is declared as a foreign key to cards.id but is not
// validated on write: an attachment may reference a nonexistent card.
type MediaStorage interface {
	// CreateMedia inserts a new attachment with the creation stamp set to
	// current time (epoch milliseconds) and returns the assigned id.
	CreateMedia(ctx context.Context, media *models.Media) (int64, error)

	// GetMedia retrieves an attachment by id.
	// Returns ErrMediaNotFound if no such row exists.
	GetMedia(ctx context.Context, id int64) (*models.Media, error)

	// GetMediaByName retrieves an attachment by its handle name.
	// Returns ErrMediaNotFound if no such row exists.
	GetMediaByName(ctx context.Context, name string) (*models.Media, error)

	// ListMediaByCard returns all attachments owned by the given card,
	// sorted by creation stamp descending.
	ListMediaByCard(ctx context.Context, cardID int64) ([]models.Media, error)

	// DeleteMedia removes the row matched by id.
	// Deleting a missing id is a silent no-op.
	DeleteMedia(ctx context.Context, id int64) error
}
