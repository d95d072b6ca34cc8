package utils

import "strings"

// StripSpaces удаляет все пробелы из распознанного текста
// Остальные пробельные символы не трогает, их обрезает валидатор
func StripSpaces(raw string) string {
	return strings.ReplaceAll(raw, " ", "")
}
