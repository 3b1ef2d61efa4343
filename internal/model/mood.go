package model

import "strings"

// Mood represents a heuristic emotional-tone label assigned to a song
type Mood string

const (
	// Primary moods, in declaration order. Classification tie-breaks follow this order.
	MoodHappy     Mood = "Happy"
	MoodSad       Mood = "Sad"
	MoodEnergetic Mood = "Energetic"
	MoodCalm      Mood = "Calm"
	MoodRomantic  Mood = "Romantic"

	// Fallback moods inferred from genre only
	MoodParty     Mood = "Party"
	MoodIntense   Mood = "Intense"
	MoodChill     Mood = "Chill"
	MoodConfident Mood = "Confident"
	MoodSmooth    Mood = "Smooth"

	// MoodMixed is the final fallback when nothing matches
	MoodMixed Mood = "Mixed"

	// MoodUnknown marks "no primary match"; it is never assigned to a song
	MoodUnknown Mood = "Unknown"
)

// String returns the string representation of Mood
func (m Mood) String() string {
	return string(m)
}

// ParseMood reads a mood label such as the Mood column of an exported playlist.
// ok is false for blanks and labels a song cannot carry.
func ParseMood(s string) (m Mood, ok bool) {
	m = Mood(strings.TrimSpace(s))
	return m, m.IsKnown()
}

// isPrimary returns true if the mood belongs to the keyword-matched set
func (m Mood) isPrimary() bool {
	switch m {
	case MoodHappy, MoodSad, MoodEnergetic, MoodCalm, MoodRomantic:
		return true
	}
	return false
}

// IsKnown returns true for every label a song can actually carry
func (m Mood) IsKnown() bool {
	if m.isPrimary() {
		return true
	}
	switch m {
	case MoodParty, MoodIntense, MoodChill, MoodConfident, MoodSmooth, MoodMixed:
		return true
	}
	return false
}
