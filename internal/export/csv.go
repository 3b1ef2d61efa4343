package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/ytget/audion/internal/model"
)

// Row is the CSV layout of an exported playlist entry
type Row struct {
	Name         string  `csv:"Name"`
	Artist       string  `csv:"Artist"`
	Genre        string  `csv:"Genre"`
	Language     string  `csv:"Language"`
	Duration     string  `csv:"Duration"`
	DurationMin  float64 `csv:"Duration_min"`
	Mood         string  `csv:"Mood"`
	Energy       float64 `csv:"energy"`
	Danceability float64 `csv:"danceability"`
	Valence      float64 `csv:"valence"`
	Tempo        int     `csv:"tempo"`
}

// RowFromSong flattens a song into an export row
func RowFromSong(s *model.Song) Row {
	return Row{
		Name:         s.Title,
		Artist:       s.Artist,
		Genre:        s.Genre,
		Language:     s.Language,
		Duration:     s.Duration,
		DurationMin:  s.DurationMin,
		Mood:         s.Mood.String(),
		Energy:       s.Features.Energy,
		Danceability: s.Features.Danceability,
		Valence:      s.Features.Valence,
		Tempo:        s.Features.Tempo,
	}
}

// CSVHeader returns the column names taken from the `csv` tags of t.
// Fields without a tag use the field name.
func CSVHeader(t reflect.Type) []string {
	var headers []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Name
		if tag := field.Tag.Get("csv"); tag != "" {
			name = tag
		}
		headers = append(headers, name)
	}
	return headers
}

// WriteCSV writes the songs to path, one row per song in playlist order
func WriteCSV(path string, songs []*model.Song) error {
	if len(songs) == 0 {
		return ErrEmptyPlaylist
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(CSVHeader(reflect.TypeOf(Row{}))); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, s := range songs {
		if err := writer.Write(rowValues(RowFromSong(s))); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return file.Close()
}

// rowValues renders struct fields in declaration order, matching CSVHeader
func rowValues(row Row) []string {
	v := reflect.ValueOf(row)
	out := make([]string, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Float64:
			out[i] = strconv.FormatFloat(f.Float(), 'f', -1, 64)
		default:
			out[i] = fmt.Sprintf("%v", f.Interface())
		}
	}
	return out
}
