package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search возвращает строки contents, содержащие query, с учётом регистра.
func Search(query, contents string) []string {
	return Filter(query, contents, true)
}

// SearchCaseInsensitive возвращает строки contents, содержащие query, без учёта регистра.
func SearchCaseInsensitive(query, contents string) []string {
	return Filter(query, contents, false)
}

// Filter выполняет поиск подстроки query в каждой строке contents.
// Строки возвращаются в исходном порядке и без изменений, дубликаты не удаляются.
func Filter(query, contents string, caseSensitive bool) []string {
	var matched []string
	matcher := newMatcher(query, caseSensitive)
	for _, line := range Lines(contents) {
		if matcher(line) {
			matched = append(matched, line)
		}
	}
	return matched
}

// newMatcher строит функцию проверки строки. Запрос приводится к нижнему регистру один раз.
func newMatcher(query string, caseSensitive bool) func(string) bool {
	if caseSensitive {
		return func(line string) bool {
			return strings.Contains(line, query)
		}
	}

	lower := cases.Lower(language.Und)
	pattern := lower.String(query)
	return func(line string) bool {
		return strings.Contains(lower.String(line), pattern)
	}
}

// Lines разбивает текст на строки по "\n" и "\r\n".
// Завершающий перевод строки не даёт пустой последней строки, одиночный "\r" остаётся в строке.
func Lines(contents string) []string {
	var lines []string
	for line := range strings.Lines(contents) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
