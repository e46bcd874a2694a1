package storage

import "errors"

// Common storage errors
var (
	// ErrCardNotFound indicates that card was not found in storage
	ErrCardNotFound = errors.New("card not found")

	// ErrSpreadsheetNotFound indicates that spreadsheet was not found in storage
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

	// ErrMediaNotFound indicates that media attachment was not found in storage
	ErrMediaNotFound = errors.New("media not found")
)
