package session

import (
	"github.com/ytget/audion/internal/library"
	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/stats"
)

// Browser defines the interface for the browsing session used by the UI.
type Browser interface {
	SetUpdateCallback(func(Snapshot))
	SetLibrary(lib *library.Library)
	Library() *library.Library

	ApplyFilter(f library.Filter)
	Filter() library.Filter
	Visible() []*model.Song

	AddToPlaylist(id string) error
	RemoveFromPlaylist(id string) error
	ClearPlaylist()
	Playlist() *model.Playlist
	Queue() []*model.Song

	Summary() stats.Summary
	LibraryStats() stats.LibraryStats
	Snapshot() Snapshot

	// Recommendations suggests up to n songs that contrast with the playlist mood
	Recommendations(n int) []*model.Song

	// ExportCSV writes the playlist table into dir and returns the file path
	ExportCSV(dir string) (string, error)

	// ExportSummary writes the text summary into dir and returns the file path
	ExportSummary(dir string) (string, error)
}
