package storage

import (
	"context"

	"github.com/iudanet/cardman/internal/models"
)

// SpreadsheetStorage defines interface for spreadsheet persistence
type SpreadsheetStorage interface {
	// CreateSpreadsheet inserts a new document with the creation stamp
	// set to current time (epoch milliseconds) and returns the assigned id.
	CreateSpreadsheet(ctx context.Context, name, data string) (int64, error)

	// GetSpreadsheet retrieves a document by id.
	// Returns ErrSpreadsheetNotFound if no such row exists.
	GetSpreadsheet(ctx context.Context, id int64) (*models.Spreadsheet, error)

	// ListSpreadsheets returns all documents sorted by creation stamp
	// descending (newest first).
	ListSpreadsheets(ctx context.Context) ([]models.Spreadsheet, error)

	// UpdateSpreadsheet replaces name and data of the row matched by id
	// and returns the number of affected rows. A missing id yields 0.
	UpdateSpreadsheet(ctx context.Context, sheet *models.Spreadsheet) (int64, error)

	// DeleteSpreadsheet removes the row matched by id.
	// Deleting a missing id is a silent no-op.
	DeleteSpreadsheet(ctx context.Context, id int64) error
}
