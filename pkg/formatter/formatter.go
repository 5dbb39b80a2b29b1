package formatter

import (
	"html"
	"unicode/utf8"
)

// EscapeHTML escapes text for Telegram's HTML parse mode.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// TruncateRunes shortens s to at most max runes, ending it with an ellipsis
// when something was cut.
// Example: TruncateRunes("привет мир", 7) -> "привет…"
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
