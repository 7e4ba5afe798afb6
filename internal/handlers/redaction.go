package handlers

import "strings"

const maxLoggedQuery = 80

// truncateForLog keeps free-text input from bloating log lines.
func truncateForLog(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxLoggedQuery {
		return text
	}
	return string(runes[:maxLoggedQuery]) + "..."
}
