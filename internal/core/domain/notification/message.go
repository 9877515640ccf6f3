package notification

import (
	"fmt"
	"strings"
)

// Message returns the title and body shown for a reminder label.
func Message(label string) (title string, body string) {
	switch label {
	case "breakfast", "lunch", "dinner":
		meal := strings.ToUpper(label[:1]) + label[1:]
		return fmt.Sprintf("%s time", meal), fmt.Sprintf("Don't forget to log your %s.", label)
	case "daily-summary":
		return "Daily summary", "Your nutrition summary for today is ready."
	default:
		return "Reminder", fmt.Sprintf("Reminder: %s", label)
	}
}
