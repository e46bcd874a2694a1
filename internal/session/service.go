package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultPin фиксированный PIN по умолчанию.
	// Устанавливается при первом запуске и восстанавливается
	// при сбросе через секретный вопрос.
	DefaultPin = "2208"

	// SecurityQuestion фиксированный секретный вопрос для сброса PIN
	SecurityQuestion = "what use of app"

	// securityAnswer единственный принимаемый ответ, сравнение без учета регистра
	securityAnswer = "LUDO"
)

// Service реализует PIN-гейт приложения поверх персистентного
// key-value состояния. Два состояния: Locked и Unlocked.
// Locked -> Unlocked только через успешный Verify;
// Unlocked -> Locked через Logout. Флаг наследуется между запусками
// процесса: сессия, не завершенная явным Logout, остается активной.
type Service struct {
	store Store
}

// NewService создает новый сервис сессии
func NewService(store Store) *Service {
	return &Service{store: store}
}

// EnsureDefaultPin persists the default PIN if none is stored yet.
// Idempotent: an existing PIN, default or not, is left untouched.
func (s *Service) EnsureDefaultPin(ctx context.Context) error {
	_, err := s.store.GetPin(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrPinNotSet) {
		return fmt.Errorf("failed to read pin: %w", err)
	}

	if err := s.store.SavePin(ctx, DefaultPin); err != nil {
		return fmt.Errorf("failed to save default pin: %w", err)
	}

	return nil
}

// Verify compares the entered PIN against the persisted one.
// Comparison is exact string equality after trimming, no lockout and no
// rate limiting. On success the authenticated flag is set; on failure the
// state is left unchanged and ok=false is returned (not an error).
func (s *Service) Verify(ctx context.Context, enteredPin string) (bool, error) {
	storedPin, err := s.store.GetPin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read pin: %w", err)
	}

	if strings.TrimSpace(enteredPin) != storedPin {
		return false, nil
	}

	if err := s.store.SetAuthenticated(ctx, true); err != nil {
		return false, fmt.Errorf("failed to set authenticated flag: %w", err)
	}

	return true, nil
}

// ResetPin resets the PIN back to the default value if the supplied
// security answer matches (case-insensitive). The caller cannot choose a
// new PIN: reset always restores DefaultPin. On mismatch the state is
// unchanged and ok=false is returned.
func (s *Service) ResetPin(ctx context.Context, answer string) (bool, error) {
	if !strings.EqualFold(strings.TrimSpace(answer), securityAnswer) {
		return false, nil
	}

	if err := s.store.SavePin(ctx, DefaultPin); err != nil {
		return false, fmt.Errorf("failed to reset pin: %w", err)
	}

	return true, nil
}

// IsAuthenticated reads the persisted authenticated flag
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	authenticated, err := s.store.IsAuthenticated(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read authenticated flag: %w", err)
	}
	return authenticated, nil
}

// Logout clears the authenticated flag
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.SetAuthenticated(ctx, false); err != nil {
		return fmt.Errorf("failed to clear authenticated flag: %w", err)
	}
	return nil
}

// Question returns the fixed security question text
func (s *Service) Question() string {
	return SecurityQuestion
}
