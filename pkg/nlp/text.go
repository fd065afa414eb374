package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText приводит текст к упрощённому виду для сравнения:
// - нижний регистр
// - заменяет все не-буквенно-цифровые символы на пробелы
// - схлопывает пробелы
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase проверяет наличие фразы (уже нормализованной) как целых слов.
// Пример: "judi online" найдётся в " ... judi online ..." но не в " ... judi onlinex ..."
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	// ensure word boundaries by padding with spaces
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// TruncateWords keeps the first max whitespace-separated words of s joined by
// single spaces and appends marker. Strings with at most max words are
// returned unchanged and report false.
func TruncateWords(s string, max int, marker string) (string, bool) {
	words := strings.Fields(s)
	if max < 0 || len(words) <= max {
		return s, false
	}
	return strings.Join(words[:max], " ") + marker, true
}
