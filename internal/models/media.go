package models

// Media представляет вложение (фото или видео), логически
// принадлежащее одной карточке. Внешний ключ card_id объявлен в схеме,
// но на записи не проверяется: вложение может пережить свою карточку.
type Media struct {
	Name      string `json:"name"`       // Name имя вложения (handle для разрешения ссылок)
	Type      string `json:"type"`       // Type вид вложения ("image", "video", свободный текст)
	Data      string `json:"data"`       // Data закодированное содержимое (base64)
	ID        int64  `json:"id"`         // ID идентификатор записи, назначается хранилищем
	CardID    int64  `json:"card_id"`    // CardID идентификатор карточки-владельца
	CreatedAt int64  `json:"created_at"` // CreatedAt время создания, миллисекунды epoch
}
