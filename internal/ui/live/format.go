package live

import (
	"fmt"
	"strings"
)

// reviewTextLimit caps question text in the review table, in runes.
const reviewTextLimit = 60

func questionLabel(index int) string {
	return fmt.Sprintf("Q%02d", index+1)
}

// clip collapses whitespace and shortens text to limit runes with an ellipsis.
func clip(text string, limit int) string {
	runes := []rune(strings.Join(strings.Fields(text), " "))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit-1]) + "…"
}
