package i18n

import "fmt"

// GetMessage resolves a message from the catalogue, applying any format
// arguments. Unknown ids are returned verbatim so a missing entry is visible
// rather than silent.
func GetMessage(id MessageId, format ...interface{}) string {
	message, ok := messages[id]
	if !ok {
		return string(id)
	}

	if len(format) == 0 {
		return message
	}

	return fmt.Sprintf(message, format...)
}
