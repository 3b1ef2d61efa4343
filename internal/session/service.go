package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ytget/audion/internal/export"
	"github.com/ytget/audion/internal/library"
	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/stats"
)

// ErrSongNotFound is returned for IDs that are not in the library or playlist
var ErrSongNotFound = errors.New("song not found")

// Snapshot is the state pushed to the UI after every change
type Snapshot struct {
	Visible       int
	PlaylistCount int
	Filter        library.Filter
	Summary       stats.Summary
	Library       stats.LibraryStats
}

// Service manages the library view and the playlist
type Service struct {
	library  *library.Library
	filter   library.Filter
	visible  []*model.Song
	playlist *model.Playlist
	exporter export.Exporter
	rng      *rand.Rand
	now      func() time.Time
	onUpdate func(Snapshot) // callback for UI updates
}

// NewService creates a session over lib. A nil exporter uses export.NewService;
// rng drives recommendations and may be nil for deterministic picks.
func NewService(lib *library.Library, exporter export.Exporter, rng *rand.Rand) *Service {
	if lib == nil {
		lib = library.New(nil)
	}
	if exporter == nil {
		exporter = export.NewService()
	}
	s := &Service{
		library:  lib,
		playlist: model.NewPlaylist(model.DefaultPlaylistName),
		exporter: exporter,
		rng:      rng,
		now:      time.Now,
	}
	s.visible = s.filter.Apply(lib.Songs())
	return s
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.onUpdate = callback
}

// SetLibrary swaps the library, keeping the filter and dropping the playlist
func (s *Service) SetLibrary(lib *library.Library) {
	if lib == nil {
		lib = library.New(nil)
	}
	s.library = lib
	s.playlist.Clear()
	s.visible = s.filter.Apply(lib.Songs())

	logger.Info("library replaced", logger.Int("songs", lib.Len()))
	s.notifyUpdate()
}

// Library returns the loaded library
func (s *Service) Library() *library.Library {
	return s.library
}

// ApplyFilter recomputes the visible rows
func (s *Service) ApplyFilter(f library.Filter) {
	s.filter = f
	s.visible = f.Apply(s.library.Songs())

	logger.Debug("filter applied",
		logger.String("language", f.Language),
		logger.String("genre", f.Genre),
		logger.String("query", f.Query),
		logger.Int("visible", len(s.visible)))
	s.notifyUpdate()
}

// Filter returns the active filter
func (s *Service) Filter() library.Filter {
	return s.filter
}

// Visible returns the rows matching the active filter in library order
func (s *Service) Visible() []*model.Song {
	out := make([]*model.Song, len(s.visible))
	copy(out, s.visible)
	return out
}

// AddToPlaylist appends a library song. Adding a member again is a no-op.
func (s *Service) AddToPlaylist(id string) error {
	song, ok := s.library.Get(id)
	if !ok {
		return fmt.Errorf("add %s: %w", id, ErrSongNotFound)
	}

	if s.playlist.AddSong(song) {
		logger.Debug("song added", logger.String("id", id), logger.String("title", song.Title))
		s.notifyUpdate()
	}
	return nil
}

// RemoveFromPlaylist drops a member from the playlist
func (s *Service) RemoveFromPlaylist(id string) error {
	if !s.playlist.RemoveSong(id) {
		return fmt.Errorf("remove %s: %w", id, ErrSongNotFound)
	}

	logger.Debug("song removed", logger.String("id", id))
	s.notifyUpdate()
	return nil
}

// ClearPlaylist removes every member
func (s *Service) ClearPlaylist() {
	if s.playlist.IsEmpty() {
		return
	}
	s.playlist.Clear()
	s.notifyUpdate()
}

// Playlist returns the playlist being built
func (s *Service) Playlist() *model.Playlist {
	return s.playlist
}

// Queue returns the playlist songs in play order
func (s *Service) Queue() []*model.Song {
	return s.playlist.Snapshot()
}

// Summary aggregates the playlist
func (s *Service) Summary() stats.Summary {
	return stats.Summarize(s.playlist.Snapshot())
}

// LibraryStats aggregates the whole library
func (s *Service) LibraryStats() stats.LibraryStats {
	return stats.ForLibrary(s.library)
}

// Snapshot returns the current state as pushed to the callback
func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		Visible:       len(s.visible),
		PlaylistCount: s.playlist.Len(),
		Filter:        s.filter,
		Summary:       s.Summary(),
		Library:       s.LibraryStats(),
	}
}

// Recommendations suggests up to n songs. n <= 0 uses stats.DefaultRecommendations.
func (s *Service) Recommendations(n int) []*model.Song {
	if n <= 0 {
		n = stats.DefaultRecommendations
	}
	return stats.Recommend(s.playlist.Snapshot(), s.library.Songs(), n, s.rng)
}

// ExportCSV writes the playlist as CSV into dir
func (s *Service) ExportCSV(dir string) (string, error) {
	return s.exporter.ExportCSV(dir, s.playlist.Snapshot())
}

// ExportSummary writes the playlist summary into dir
func (s *Service) ExportSummary(dir string) (string, error) {
	return s.exporter.ExportSummary(dir, s.playlist.Snapshot(), s.now())
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.Snapshot())
	}
}
