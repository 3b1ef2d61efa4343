package stats

import (
	"fmt"
	"strings"

	"github.com/ytget/audion/internal/model"
)

// EmptyPlaylistHint is shown instead of insights when nothing is selected
const EmptyPlaylistHint = "No songs selected. Add some tracks to see a playlist summary and insights."

// Insight renders a short human-readable description of a playlist
func Insight(songs []*model.Song, summary Summary) string {
	if len(songs) == 0 {
		return EmptyPlaylistHint
	}

	lines := []string{
		fmt.Sprintf("Total duration: %s • Avg length: %s", FormatMinutes(summary.TotalMin), FormatMinutes(summary.AvgMin)),
		fmt.Sprintf("Top artist: %s • Top genre: %s • Top language: %s", summary.TopArtist, summary.TopGenre, summary.TopLanguage),
	}
	if summary.DominantMood != "" && summary.DominantMood.String() != Unknown {
		lines = append(lines, fmt.Sprintf("Dominant mood: %s. Try adding a contrasting track to vary the vibe.", summary.DominantMood))
	} else {
		lines = append(lines, "Mood info unavailable.")
	}
	return strings.Join(lines, "\n")
}
