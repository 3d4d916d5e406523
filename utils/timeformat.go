package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime12Hour converts a 24-hour "HH:MM" service time into "h:MM AM/PM"
// for receipts, documents and share messages. Empty input returns empty;
// anything that does not parse is passed through unchanged.
func FormatTime12Hour(timeString string) string {
	if timeString == "" {
		return ""
	}

	parts := strings.SplitN(timeString, ":", 2)
	if len(parts) != 2 {
		return timeString
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeString
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return timeString
	}

	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	hour := h % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, m, ampm)
}
