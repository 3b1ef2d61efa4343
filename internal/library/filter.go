package library

import (
	"strings"

	"github.com/ytget/audion/internal/model"
)

// FilterAll disables a filter field
const FilterAll = "All"

// Filter narrows the visible songs. Empty or "All" fields match everything.
type Filter struct {
	Language string
	Genre    string
	Query    string // case-insensitive substring of title or artist
}

// IsZero reports whether the filter lets every song through
func (f Filter) IsZero() bool {
	return isAll(f.Language) && isAll(f.Genre) && strings.TrimSpace(f.Query) == ""
}

// Matches checks a single song against the filter
func (f Filter) Matches(s *model.Song) bool {
	if !isAll(f.Language) && s.Language != f.Language {
		return false
	}
	if !isAll(f.Genre) && s.Genre != f.Genre {
		return false
	}
	return s.MatchesQuery(f.Query)
}

// Apply returns the matching songs, preserving input order. The result is
// always a new slice.
func (f Filter) Apply(songs []*model.Song) []*model.Song {
	if f.IsZero() {
		out := make([]*model.Song, len(songs))
		copy(out, songs)
		return out
	}
	out := make([]*model.Song, 0, len(songs))
	for _, s := range songs {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

func isAll(v string) bool {
	return v == "" || v == FilterAll
}
