package library

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRuns = regexp.MustCompile(`\d+`)

// ParseDuration converts "mm:ss" or "hh:mm:ss" text to minutes.
// Unparseable input yields 0; it never fails.
func ParseDuration(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	parts, ok := parseIntParts(strings.Split(s, ":"))
	if !ok {
		// Salvage strings like "3m 20s" or "Duration: 03.20" using the last two numbers
		nums := digitRuns.FindAllString(s, -1)
		if len(nums) < 2 {
			return 0
		}
		parts, ok = parseIntParts(nums[len(nums)-2:])
		if !ok {
			return 0
		}
	}

	switch len(parts) {
	case 2:
		return float64(parts[0]) + float64(parts[1])/60
	case 3:
		return float64(parts[0]*60+parts[1]) + float64(parts[2])/60
	default:
		return 0
	}
}

func parseIntParts(fields []string) ([]int, bool) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
