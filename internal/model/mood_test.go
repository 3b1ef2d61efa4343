package model

import "testing"

func TestMood_isPrimary(t *testing.T) {
	tests := []struct {
		mood     Mood
		expected bool
	}{
		{MoodHappy, true},
		{MoodSad, true},
		{MoodEnergetic, true},
		{MoodCalm, true},
		{MoodRomantic, true},
		{MoodParty, false},
		{MoodSmooth, false},
		{MoodMixed, false},
		{MoodUnknown, false},
	}

	for _, test := range tests {
		result := test.mood.isPrimary()
		if result != test.expected {
			t.Errorf("Mood(%s).isPrimary() = %v, expected %v", test.mood, result, test.expected)
		}
	}
}

func TestMood_IsKnown(t *testing.T) {
	tests := []struct {
		mood     Mood
		expected bool
	}{
		{MoodHappy, true},
		{MoodConfident, true},
		{MoodMixed, true},
		{MoodUnknown, false},
		{Mood("Melancholic"), false},
	}

	for _, test := range tests {
		result := test.mood.IsKnown()
		if result != test.expected {
			t.Errorf("Mood(%s).IsKnown() = %v, expected %v", test.mood, result, test.expected)
		}
	}
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		input    string
		expected Mood
		ok       bool
	}{
		{"Happy", MoodHappy, true},
		{" Smooth ", MoodSmooth, true},
		{"", Mood(""), false},
		{"Unknown", MoodUnknown, false},
		{"happy", Mood("happy"), false},
	}

	for _, test := range tests {
		m, ok := ParseMood(test.input)
		if m != test.expected || ok != test.ok {
			t.Errorf("ParseMood(%q) = %s, %v; expected %s, %v", test.input, m, ok, test.expected, test.ok)
		}
	}
}
