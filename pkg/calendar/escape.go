package calendar

import "strings"

// Escape applies the iCalendar TEXT escaping. Backslashes go first so the
// escapes added afterwards are not escaped again.
func Escape(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, ";", `\;`)
	text = strings.ReplaceAll(text, ",", `\,`)
	text = strings.ReplaceAll(text, "\n", `\n`)

	return text
}
