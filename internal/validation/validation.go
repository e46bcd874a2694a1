package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// PinPattern определяет допустимый формат PIN-кода: ровно четыре цифры
var PinPattern = regexp.MustCompile(`^\d{4}$`)

const (
	// MaxCardNameLen максимальная длина имени на карточке
	MaxCardNameLen = 128
	// PinLen длина PIN-кода
	PinLen = 4
)

// ValidateCardName проверяет имя на карточке.
// Имя — единственное обязательное поле карточки; проверка выполняется
// на границе ввода, хранилище пустые имена не отвергает.
func ValidateCardName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > MaxCardNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxCardNameLen)
	}

	return nil
}

// ValidatePin проверяет формат PIN-кода: ровно четыре цифры.
func ValidatePin(pin string) error {
	if pin == "" {
		return fmt.Errorf("PIN cannot be empty")
	}

	if !PinPattern.MatchString(pin) {
		return fmt.Errorf("PIN must be exactly %d digits", PinLen)
	}

	return nil
}
