package session

import (
	"context"
	"errors"
)

// Common session storage errors
var (
	// ErrPinNotSet indicates that no PIN has been persisted yet
	ErrPinNotSet = errors.New("pin not set")
)

// Store defines interface for the persisted key-value session state.
// Two entries live here: the PIN string and the authenticated flag.
// The state is process-wide and uncoordinated above what the underlying
// key-value store provides: concurrent writers race, last write wins.
type Store interface {
	// GetPin returns the persisted PIN.
	// Returns ErrPinNotSet if no PIN has been saved yet.
	GetPin(ctx context.Context) (string, error)

	// SavePin persists the PIN, overwriting any previous value.
	// The PIN is stored as plaintext: hashing it would change the
	// contract of this store.
	SavePin(ctx context.Context, pin string) error

	// IsAuthenticated reads the persisted authenticated flag.
	// A missing flag reads as false.
	IsAuthenticated(ctx context.Context) (bool, error)

	// SetAuthenticated persists the authenticated flag.
	SetAuthenticated(ctx context.Context, authenticated bool) error
}
