package models

import "math/rand/v2"

// Card представляет карточку-анкету: контактные данные
// плюс ссылки на фото и сканы документов.
type Card struct {
	Code     string `json:"code"`     // Code трехбуквенный код карточки (A-Z)
	Name     string `json:"name"`     // Name имя владельца (единственное обязательное поле)
	Gender   string `json:"gender"`   // Gender пол ("male"/"female", хранится как свободный текст)
	Phone    string `json:"phone"`    // Phone номер телефона
	Email    string `json:"email"`    // Email адрес почты
	Address  string `json:"address"`  // Address почтовый адрес
	Photo    string `json:"photo"`    // Photo ссылка на фото (opaque handle)
	IDFront  string `json:"id_front"` // IDFront ссылка на лицевую сторону документа
	IDBack   string `json:"id_back"`  // IDBack ссылка на обратную сторону документа
	Notes    string `json:"notes"`    // Notes произвольные заметки
	Birthday string `json:"birthday"` // Birthday дата рождения (свободный текст)
	ID       int64  `json:"id"`       // ID идентификатор записи, назначается хранилищем
}

// codeAlphabet допустимые символы кода карточки
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodeLen длина генерируемого кода карточки
const CodeLen = 3

// NewCardCode возвращает случайный код карточки из трех заглавных
// латинских букв. Уникальность кода НЕ гарантируется: схема объявляет
// UNIQUE, но путь создания карточки код не проверяет.
func NewCardCode() string {
	code := make([]byte, CodeLen)
	for i := range code {
		code[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(code)
}
