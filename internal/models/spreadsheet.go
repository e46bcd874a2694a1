package models

// Spreadsheet представляет именованную таблицу.
// Содержимое хранится как текст: строки разделены переводом строки,
// ячейки внутри строки — запятой, без какого-либо экранирования.
type Spreadsheet struct {
	Name      string `json:"name"`       // Name название документа
	Data      string `json:"data"`       // Data сериализованная сетка ячеек
	ID        int64  `json:"id"`         // ID идентификатор записи, назначается хранилищем
	CreatedAt int64  `json:"created_at"` // CreatedAt время создания, миллисекунды epoch
}
