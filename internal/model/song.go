package model

import (
	"strings"
)

// AudioFeatures holds simulated audio descriptors used by the charts
type AudioFeatures struct {
	Energy       float64 `json:"energy"`
	Danceability float64 `json:"danceability"`
	Valence      float64 `json:"valence"`
	Tempo        int     `json:"tempo"`
}

// Song represents a single row of the library spreadsheet
type Song struct {
	ID          string        `json:"id"`
	Index       int           `json:"index"` // row position in the library
	Title       string        `json:"title"` // "Name" column
	Artist      string        `json:"artist"`
	Genre       string        `json:"genre"`
	Language    string        `json:"language"`
	Duration    string        `json:"duration"`     // raw duration text (mm:ss or hh:mm:ss)
	DurationMin float64       `json:"duration_min"` // parsed duration in minutes
	Mood        Mood          `json:"mood"`
	Features    AudioFeatures `json:"features"`
}

// GetDisplayTitle returns "Title | Artist", or just the title when artist is blank
func (s *Song) GetDisplayTitle() string {
	title := strings.TrimSpace(s.Title)
	artist := strings.TrimSpace(s.Artist)
	if artist == "" {
		return title
	}
	return title + " | " + artist
}

// MatchesQuery reports whether the lower-cased query is a substring of title or artist
func (s *Song) MatchesQuery(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), query) ||
		strings.Contains(strings.ToLower(s.Artist), query)
}
