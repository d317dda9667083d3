package question

import (
	"fmt"
	"strings"
)

const byteOrderMark = "\uFEFF"

// Clean normalizes a raw field value: nil becomes the empty string, a leading
// byte-order mark is dropped and surrounding whitespace is trimmed.
func Clean(value any) string {
	var text string
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		text = typed
	case *string:
		if typed == nil {
			return ""
		}
		text = *typed
	case []byte:
		text = string(typed)
	case fmt.Stringer:
		text = typed.String()
	default:
		text = fmt.Sprint(typed)
	}
	text = strings.TrimPrefix(text, byteOrderMark)
	return strings.TrimSpace(text)
}
