package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/stats"
)

// SummaryTimeLayout is the timestamp format of the summary header
const SummaryTimeLayout = "2006-01-02 15:04:05"

// RenderSummary returns the plain-text playlist report
func RenderSummary(songs []*model.Song, now time.Time) string {
	summary := stats.Summarize(songs)

	lines := []string{
		fmt.Sprintf("Playlist Summary - %s", now.Format(SummaryTimeLayout)),
		fmt.Sprintf("Tracks: %d", len(songs)),
		fmt.Sprintf("Total duration: %s", stats.FormatMinutes(summary.TotalMin)),
		fmt.Sprintf("Average track length: %s", stats.FormatMinutes(summary.AvgMin)),
		fmt.Sprintf("Top artist: %s", summary.TopArtist),
		fmt.Sprintf("Top genre: %s", summary.TopGenre),
		"",
		"Track list:",
	}
	for i, s := range songs {
		lines = append(lines, fmt.Sprintf("%d. %s | %s (%s)", i+1, s.Title, s.Artist, stats.FormatMinutes(s.DurationMin)))
	}
	return strings.Join(lines, "\n")
}

// WriteSummary writes the plain-text report to path
func WriteSummary(path string, songs []*model.Song, now time.Time) error {
	if len(songs) == 0 {
		return ErrEmptyPlaylist
	}
	if err := os.WriteFile(path, []byte(RenderSummary(songs, now)), 0644); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", path, err)
	}
	return nil
}
