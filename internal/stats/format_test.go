package stats

import (
	"math"
	"testing"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  float64
		expected string
	}{
		{0, "0:00"},
		{-3, "0:00"},
		{math.NaN(), "0:00"},
		{0.5, "0:30"},
		{3 + 2.0/60, "3:02"},
		{59.99, "59:59"},
		{60, "1:00:00"},
		{62.5, "1:02:30"},
		{125 + 5.0/60, "2:05:05"},
	}

	for _, test := range tests {
		result := FormatMinutes(test.minutes)
		if result != test.expected {
			t.Errorf("FormatMinutes(%v) = %s, expected %s", test.minutes, result, test.expected)
		}
	}
}
