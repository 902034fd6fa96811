package booking

import (
	"fmt"
	"time"
)

// All slot arithmetic happens in minutes-of-day so interval comparisons stay
// plain integer math. "HH:mm" strings exist only at the edges.

const slotIncrement = 30

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
