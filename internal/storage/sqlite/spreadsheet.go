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

// CreateSpreadsheet inserts a new document with the creation stamp set to
// current time (epoch milliseconds) and returns the assigned id.
func (s *Storage) CreateSpreadsheet(ctx context.Context, name, data string) (int64, error) {
	query := `
		INSERT INTO excel_files (name, data, created_date)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, name, data, time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to insert spreadsheet: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

// GetSpreadsheet retrieves a document by id
func (s *Storage) GetSpreadsheet(ctx context.Context, id int64) (*models.Spreadsheet, error) {
	query := `
		SELECT id, name, data, created_date
		FROM excel_files
		WHERE id = ?
	`

	sheet := &models.Spreadsheet{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sheet.ID,
		&sheet.Name,
		&sheet.Data,
		&sheet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSpreadsheetNotFound
		}
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	return sheet, nil
}

// ListSpreadsheets returns all documents sorted by creation stamp
// descending (newest first).
func (s *Storage) ListSpreadsheets(ctx context.Context) ([]models.Spreadsheet, error) {
	query := `
		SELECT id, name, data, created_date
		FROM excel_files
		ORDER BY created_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query spreadsheets: %w", err)
	}
	defer rows.Close()

	sheets := []models.Spreadsheet{}

	for rows.Next() {
		var sheet models.Spreadsheet
		if err := rows.Scan(&sheet.ID, &sheet.Name, &sheet.Data, &sheet.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan spreadsheet: %w", err)
		}
		sheets = append(sheets, sheet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spreadsheets: %w", err)
	}

	return sheets, nil
}

// UpdateSpreadsheet replaces name and data of the row matched by sheet.ID
// and returns the number of affected rows. A missing id yields 0.
// The creation stamp is kept as is.
func (s *Storage) UpdateSpreadsheet(ctx context.Context, sheet *models.Spreadsheet) (int64, error) {
	query := `
		UPDATE excel_files
		SET name = ?, data = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, sheet.Name, sheet.Data, sheet.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update spreadsheet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// DeleteSpreadsheet removes the row matched by id.
// Deleting a missing id is a silent no-op.
func (s *Storage) DeleteSpreadsheet(ctx context.Context, id int64) error {
	query := `DELETE FROM excel_files WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete spreadsheet: %w", err)
	}

	return nil
}
