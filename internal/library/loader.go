package library

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/mood"
)

// Spreadsheet column headers
const (
	ColName     = "Name"
	ColArtist   = "Artist"
	ColGenre    = "Genre"
	ColLanguage = "Language"
	ColDuration = "Duration"
	ColMood     = "Mood" // optional; present in exported playlists
)

// DefaultLibraryFile is looked up in the working directory when nothing is configured
const DefaultLibraryFile = "audion.xlsx"

var (
	ErrMissingNameColumn = errors.New("spreadsheet missing required 'Name' column")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoSheets          = errors.New("workbook has no sheets")
)

var excelExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// SupportedExtensions lists the file extensions Load accepts, for file pickers
func SupportedExtensions() []string {
	return []string{".xlsx", ".xlsm", ".xltx", ".xltm", ".csv"}
}

// Loader turns spreadsheet rows into a tagged Library
type Loader struct {
	rng *rand.Rand
}

// NewLoader creates a loader. rng drives tempo simulation; nil gives mean tempos.
func NewLoader(rng *rand.Rand) *Loader {
	return &Loader{rng: rng}
}

// Load reads the spreadsheet at path
func (l *Loader) Load(path string) (*Library, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}
	lib, err := l.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return lib, nil
}

// LoadOrSample reads the spreadsheet, falling back to the built-in sample on
// any error. The returned library is never nil; err reports why the sample was used.
func (l *Loader) LoadOrSample(path string) (lib *Library, usedSample bool, err error) {
	start := time.Now()
	lib, err = l.Load(path)
	if err == nil {
		logger.Info("library loaded",
			logger.String("path", path),
			logger.Int("songs", lib.Len()),
			logger.Float64("avg_min", lib.AverageDuration()),
			logger.Duration("elapsed", time.Since(start)))
		return lib, false, nil
	}

	logger.Warn("falling back to sample library", logger.String("path", path), logger.ErrorField(err))
	return l.Sample(), true, err
}

// Sample returns the built-in dataset
func (l *Loader) Sample() *Library {
	rows := make([][]string, 0, len(SampleRows)+1)
	rows = append(rows, SampleHeader)
	rows = append(rows, SampleRows...)
	lib, _ := l.FromRows(rows)
	return lib
}

// FromRows builds a library from a header row followed by data rows
func (l *Loader) FromRows(rows [][]string) (*Library, error) {
	if len(rows) == 0 {
		return nil, ErrMissingNameColumn
	}

	columns := make(map[string]int)
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if _, dup := columns[h]; !dup {
			columns[h] = i
		}
	}
	if _, ok := columns[ColName]; !ok {
		return nil, ErrMissingNameColumn
	}

	cell := func(row []string, col string) string {
		idx, ok := columns[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	songs := make([]*model.Song, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		song := &model.Song{
			ID:       uuid.NewString(),
			Index:    len(songs),
			Title:    cell(row, ColName),
			Artist:   cell(row, ColArtist),
			Genre:    cell(row, ColGenre),
			Language: cell(row, ColLanguage),
			Duration: cell(row, ColDuration),
		}
		song.DurationMin = ParseDuration(song.Duration)
		if m, ok := model.ParseMood(cell(row, ColMood)); ok {
			song.Mood = m
		} else {
			song.Mood = mood.Classify(song.Title, song.Genre)
		}
		song.Features = mood.SimulateFeatures(song.Genre, song.Mood, l.rng)

		songs = append(songs, song)
	}

	return New(songs), nil
}

// ReadRows returns the raw cell text of the first sheet (or the CSV file)
func ReadRows(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case excelExtensions[ext]:
		return readExcelRows(path)
	case ext == ".csv":
		return readCSVRows(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
