package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minWordLen = 3

// Normalize extracts vocabulary words from a message: everything except Cyrillic (а-я), Latin letters
// and whitespace is dropped, the rest is lowercased and split, and tokens shorter than three runes are discarded.
// Order and duplicates are kept.
func Normalize(text string) []string {
	clean := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)

	fields := strings.Fields(strings.ToLower(clean))
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if utf8.RuneCountInString(w) < minWordLen {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ё and Ё are outside the а-я range and are not word runes.
func isWordRune(r rune) bool {
	switch {
	case r >= 'а' && r <= 'я', r >= 'А' && r <= 'Я':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	default:
		return false
	}
}
