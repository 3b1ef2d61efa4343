package stats

import (
	"strings"

	"github.com/ytget/audion/internal/model"
)

// Placeholders used when a summary has nothing to report
const (
	NotAvailable = "N/A"
	Unknown      = "Unknown"
)

// Summary aggregates a set of songs
type Summary struct {
	Count         int
	TotalMin      float64
	AvgMin        float64
	TopArtist     string
	TopGenre      string
	TopLanguage   string
	DominantMood  model.Mood
	MoodDiversity int
}

// IsEmpty reports whether the summary was computed over no songs
func (s Summary) IsEmpty() bool {
	return s.Count == 0
}

// Summarize computes totals and modes. An empty input returns zeros and
// NotAvailable placeholders. Mode ties go to the first value encountered.
func Summarize(songs []*model.Song) Summary {
	if len(songs) == 0 {
		return Summary{
			TopArtist:    NotAvailable,
			TopGenre:     NotAvailable,
			TopLanguage:  NotAvailable,
			DominantMood: model.Mood(NotAvailable),
		}
	}

	var total float64
	moods := make(map[model.Mood]struct{})
	for _, s := range songs {
		total += s.DurationMin
		moods[s.Mood] = struct{}{}
	}

	dominant := Mode(songs, func(s *model.Song) string { return s.Mood.String() })

	return Summary{
		Count:         len(songs),
		TotalMin:      total,
		AvgMin:        total / float64(len(songs)),
		TopArtist:     Mode(songs, func(s *model.Song) string { return s.Artist }),
		TopGenre:      Mode(songs, func(s *model.Song) string { return s.Genre }),
		TopLanguage:   Mode(songs, func(s *model.Song) string { return s.Language }),
		DominantMood:  model.Mood(dominant),
		MoodDiversity: len(moods),
	}
}

// Mode returns the most frequent non-blank value of field, or Unknown when
// every value is blank. Ties are broken by first occurrence.
func Mode(songs []*model.Song, field func(*model.Song) string) string {
	buckets := countValues(songs, field)
	if len(buckets) == 0 {
		return Unknown
	}
	return buckets[0].Label
}

func countValues(songs []*model.Song, field func(*model.Song) string) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	for _, s := range songs {
		v := strings.TrimSpace(field(s))
		if v == "" {
			continue
		}
		if i, ok := index[v]; ok {
			buckets[i].Count++
			continue
		}
		index[v] = len(buckets)
		buckets = append(buckets, Bucket{Label: v, Count: 1})
	}
	sortBuckets(buckets)
	return buckets
}
