package export

import (
	"time"

	"github.com/ytget/audion/internal/model"
)

// Exporter defines the interface for the playlist export service.
type Exporter interface {
	// ExportCSV writes the playlist table and returns the written file path
	ExportCSV(dir string, songs []*model.Song) (string, error)

	// ExportSummary writes the plain-text summary and returns the written file path
	ExportSummary(dir string, songs []*model.Song, now time.Time) (string, error)
}
