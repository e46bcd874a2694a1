// Package grid реализует текстовый формат таблиц: строки разделены
// переводом строки, ячейки — запятой. Формат не поддерживает
// экранирование: запятая или перевод строки внутри ячейки меняют
// форму сетки при следующем разборе.
package grid

import "strings"

const (
	// DefaultRows число строк в новой пустой таблице
	DefaultRows = 10
	// DefaultCols число колонок в новой пустой таблице
	DefaultCols = 5

	rowDelimiter  = "\n"
	cellDelimiter = ","
)

// Default возвращает сериализованную пустую таблицу DefaultRows x DefaultCols:
// все ячейки — пустые строки, без завершающего перевода строки.
func Default() string {
	return Serialize(Empty(DefaultRows, DefaultCols))
}

// Empty возвращает сетку rows x cols из пустых ячеек.
func Empty(rows, cols int) [][]string {
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	return cells
}

// Parse разбирает сериализованную таблицу в сетку ячеек.
// Форма сетки не нормализуется: строки могут иметь разное число ячеек.
func Parse(data string) [][]string {
	rows := strings.Split(data, rowDelimiter)
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = strings.Split(row, cellDelimiter)
	}
	return cells
}

// Serialize собирает сетку ячеек обратно в текст.
// Значения ячеек вставляются как есть, без экранирования.
func Serialize(cells [][]string) string {
	rows := make([]string, len(cells))
	for i, row := range cells {
		rows[i] = strings.Join(row, cellDelimiter)
	}
	return strings.Join(rows, rowDelimiter)
}

// Dimensions возвращает число строк и максимальную ширину строки сетки.
func Dimensions(cells [][]string) (rows, cols int) {
	rows = len(cells)
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return rows, cols
}
