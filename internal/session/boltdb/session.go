package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/cardman/internal/session"
)

var (
	keyPin           = []byte("pin")
	keyAuthenticated = []byte("authenticated")
)

// GetPin returns the persisted PIN.
// Returns session.ErrPinNotSet if no PIN has been saved yet.
func (s *Storage) GetPin(ctx context.Context) (string, error) {
	var pin string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(keyPin)
		if data == nil {
			return session.ErrPinNotSet
		}

		pin = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return pin, nil
}

// SavePin persists the PIN as plaintext, overwriting any previous value
func (s *Storage) SavePin(ctx context.Context, pin string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyPin, []byte(pin)); err != nil {
			return fmt.Errorf("failed to save pin: %w", err)
		}

		return nil
	})
}

// IsAuthenticated reads the persisted authenticated flag.
// A missing flag reads as false.
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	var authenticated bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(keyAuthenticated)
		authenticated = len(data) == 1 && data[0] == 1
		return nil
	})
	if err != nil {
		return false, err
	}

	return authenticated, nil
}

// SetAuthenticated persists the authenticated flag as a single byte
func (s *Storage) SetAuthenticated(ctx context.Context, authenticated bool) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		value := []byte{0}
		if authenticated {
			value[0] = 1
		}

		if err := bucket.Put(keyAuthenticated, value); err != nil {
			return fmt.Errorf("failed to save authenticated flag: %w", err)
		}

		return nil
	})
}
