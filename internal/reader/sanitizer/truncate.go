package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// TruncateHTML returns the text of the HTML fragment input on a single line,
// cut to maxLen runes. A cut text ends with an ellipsis. Entities stay
// escaped.
func TruncateHTML(input string, maxLen int) string {
	text := strings.Join(strings.Fields(StripTags(input)), " ")
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxLen])) + "…"
}
