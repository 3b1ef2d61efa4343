package stats

import (
	"fmt"
	"math"
)

// FormatMinutes renders fractional minutes as "m:ss" or "h:mm:ss"
func FormatMinutes(minutes float64) string {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes <= 0 {
		return "0:00"
	}

	totalSeconds := int(math.Round(minutes * 60))
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}
