package library

import (
	"sort"

	"github.com/ytget/audion/internal/model"
)

// Library is the in-memory song table in spreadsheet row order
type Library struct {
	songs []*model.Song
	byID  map[string]*model.Song
}

// New builds a library from already-tagged songs, keeping their order
func New(songs []*model.Song) *Library {
	lib := &Library{
		songs: make([]*model.Song, 0, len(songs)),
		byID:  make(map[string]*model.Song, len(songs)),
	}
	for _, s := range songs {
		if s == nil {
			continue
		}
		lib.songs = append(lib.songs, s)
		lib.byID[s.ID] = s
	}
	return lib
}

// Len returns the number of songs
func (l *Library) Len() int {
	return len(l.songs)
}

// Songs returns all songs in library order
func (l *Library) Songs() []*model.Song {
	out := make([]*model.Song, len(l.songs))
	copy(out, l.songs)
	return out
}

// Get returns a song by ID
func (l *Library) Get(id string) (*model.Song, bool) {
	s, ok := l.byID[id]
	return s, ok
}

// Languages returns the sorted unique languages
func (l *Library) Languages() []string {
	return l.uniqueSorted(func(s *model.Song) string { return s.Language })
}

// Genres returns the sorted unique genres
func (l *Library) Genres() []string {
	return l.uniqueSorted(func(s *model.Song) string { return s.Genre })
}

// AverageDuration returns the mean duration in minutes, 0 for an empty library
func (l *Library) AverageDuration() float64 {
	if len(l.songs) == 0 {
		return 0
	}
	var total float64
	for _, s := range l.songs {
		total += s.DurationMin
	}
	return total / float64(len(l.songs))
}

func (l *Library) uniqueSorted(field func(*model.Song) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range l.songs {
		v := field(s)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
