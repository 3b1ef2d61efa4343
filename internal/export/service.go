package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/platform"
)

// Output file names
const (
	CSVFileName     = "audion_playlist.csv"
	SummaryFileName = "audion_playlist_summary.txt"
)

// ErrEmptyPlaylist is returned instead of writing an empty export
var ErrEmptyPlaylist = errors.New("no playlist to export")

// Service writes playlist exports into a directory
type Service struct{}

// NewService creates a new export service
func NewService() Exporter {
	return &Service{}
}

// ExportCSV writes audion_playlist.csv into dir
func (s *Service) ExportCSV(dir string, songs []*model.Song) (string, error) {
	if len(songs) == 0 {
		return "", ErrEmptyPlaylist
	}
	path, err := prepare(dir, CSVFileName)
	if err != nil {
		return "", err
	}
	if err := WriteCSV(path, songs); err != nil {
		return "", err
	}

	logger.Info("playlist exported", logger.String("path", path), logger.Int("tracks", len(songs)))
	return path, nil
}

// ExportSummary writes audion_playlist_summary.txt into dir
func (s *Service) ExportSummary(dir string, songs []*model.Song, now time.Time) (string, error) {
	if len(songs) == 0 {
		return "", ErrEmptyPlaylist
	}
	path, err := prepare(dir, SummaryFileName)
	if err != nil {
		return "", err
	}
	if err := WriteSummary(path, songs, now); err != nil {
		return "", err
	}

	logger.Info("summary exported", logger.String("path", path), logger.Int("tracks", len(songs)))
	return path, nil
}

func prepare(dir, name string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to prepare export directory: %w", err)
	}
	return filepath.Join(dir, name), nil
}
