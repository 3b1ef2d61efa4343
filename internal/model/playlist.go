package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPlaylistName is used when the user has not named the playlist
const DefaultPlaylistName = "My Playlist"

// Playlist represents the user-curated, insertion-ordered subset of the library.
// The order of Songs is the play queue order.
type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Songs     []*Song   `json:"songs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	members map[string]struct{}
}

// NewPlaylist creates a new empty playlist instance
func NewPlaylist(name string) *Playlist {
	if name == "" {
		name = DefaultPlaylistName
	}
	now := time.Now()
	return &Playlist{
		ID:        uuid.NewString(),
		Name:      name,
		Songs:     make([]*Song, 0),
		CreatedAt: now,
		UpdatedAt: now,
		members:   make(map[string]struct{}),
	}
}

// AddSong appends a song to the playlist. Returns false if it is already a member.
func (p *Playlist) AddSong(song *Song) bool {
	if song == nil || p.Contains(song.ID) {
		return false
	}
	if p.members == nil {
		p.members = make(map[string]struct{})
	}
	p.Songs = append(p.Songs, song)
	p.members[song.ID] = struct{}{}
	p.UpdatedAt = time.Now()
	return true
}

// RemoveSong removes a song from the playlist by ID. Returns false if it was not a member.
func (p *Playlist) RemoveSong(songID string) bool {
	for i, song := range p.Songs {
		if song.ID == songID {
			p.Songs = append(p.Songs[:i], p.Songs[i+1:]...)
			delete(p.members, songID)
			p.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Contains checks if a song is a member of the playlist
func (p *Playlist) Contains(songID string) bool {
	_, ok := p.members[songID]
	return ok
}

// Len returns the number of songs in the playlist
func (p *Playlist) Len() int {
	return len(p.Songs)
}

// IsEmpty checks if the playlist has no songs
func (p *Playlist) IsEmpty() bool {
	return len(p.Songs) == 0
}

// Snapshot returns a copy of the song slice so callers can iterate safely
func (p *Playlist) Snapshot() []*Song {
	out := make([]*Song, len(p.Songs))
	copy(out, p.Songs)
	return out
}

// Clear removes every song from the playlist
func (p *Playlist) Clear() {
	p.Songs = make([]*Song, 0)
	p.members = make(map[string]struct{})
	p.UpdatedAt = time.Now()
}
