package processor

import (
	"strings"
	"unicode"
)

const ellipsis = "…"

// LimitSpoken caps text at maxChars runes. When text is cut, the result ends with an
// ellipsis that counts toward the cap. A non-positive cap disables truncation.
func LimitSpoken(text string, maxChars int) string {
	text = strings.TrimSpace(text)
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	cut := strings.TrimRightFunc(string(runes[:maxChars-1]), unicode.IsSpace)
	return cut + ellipsis
}
