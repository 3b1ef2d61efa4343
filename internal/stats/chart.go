package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/ytget/audion/internal/model"
)

// Field selects the song attribute to count by
type Field string

const (
	FieldArtist   Field = "artist"
	FieldGenre    Field = "genre"
	FieldLanguage Field = "language"
	FieldMood     Field = "mood"
)

// ChartKind is the visual form requested for a chart
type ChartKind string

const (
	ChartBar       ChartKind = "bar"
	ChartPie       ChartKind = "pie"
	ChartDonut     ChartKind = "donut"
	ChartHistogram ChartKind = "histogram"
)

// DefaultHistogramBins matches the song length chart on the dashboard
const DefaultHistogramBins = 15

// Default color palette for chart series
var defaultColors = []string{
	"#6366F1", "#22C55E", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#4F46E5",
}

// Bucket is one counted category
type Bucket struct {
	Label string
	Count int
}

// Bin is one histogram interval [Lower, Upper)
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// ChartPoint is a single labeled value with its share of the total
type ChartPoint struct {
	Label   string
	Value   float64
	Percent float64
	Color   string
}

// ChartConfig describes a chart independently of how it is drawn
type ChartConfig struct {
	Kind   ChartKind
	Title  string
	Points []ChartPoint
	Max    float64
}

// IsEmpty reports whether there is anything to draw
func (c *ChartConfig) IsEmpty() bool {
	return c == nil || len(c.Points) == 0
}

// CountBy counts songs per value of field, most frequent first.
// limit <= 0 keeps every bucket. Blank values are skipped.
func CountBy(songs []*model.Song, field Field, limit int) []Bucket {
	buckets := countValues(songs, fieldAccessor(field))
	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets
}

func fieldAccessor(field Field) func(*model.Song) string {
	switch field {
	case FieldArtist:
		return func(s *model.Song) string { return s.Artist }
	case FieldGenre:
		return func(s *model.Song) string { return s.Genre }
	case FieldLanguage:
		return func(s *model.Song) string { return s.Language }
	case FieldMood:
		return func(s *model.Song) string { return s.Mood.String() }
	default:
		return func(*model.Song) string { return "" }
	}
}

// sortBuckets orders by count descending; the stable sort keeps first-seen order on ties
func sortBuckets(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
}

// Durations extracts DurationMin values for histogramming
func Durations(songs []*model.Song) []float64 {
	out := make([]float64, 0, len(songs))
	for _, s := range songs {
		out = append(out, s.DurationMin)
	}
	return out
}

// Histogram splits values into equal-width bins spanning [min, max].
// The last bin is closed so the maximum is counted.
func Histogram(values []float64, bins int) []Bin {
	var clean []float64
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := clean[0], clean[0]
	for _, v := range clean[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	for _, v := range clean {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}

// BuildChart produces a ChartConfig from counted buckets
func BuildChart(title string, kind ChartKind, buckets []Bucket) *ChartConfig {
	config := &ChartConfig{Kind: kind, Title: title}
	if len(buckets) == 0 {
		return config
	}

	var total float64
	for _, b := range buckets {
		total += float64(b.Count)
	}

	config.Points = make([]ChartPoint, 0, len(buckets))
	for i, b := range buckets {
		v := float64(b.Count)
		config.Points = append(config.Points, ChartPoint{
			Label:   b.Label,
			Value:   v,
			Percent: RoundTo2(v / total * 100),
			Color:   defaultColors[i%len(defaultColors)],
		})
		config.Max = math.Max(config.Max, v)
	}
	return config
}

// BuildHistogramChart produces a ChartConfig from histogram bins
func BuildHistogramChart(title string, bins []Bin) *ChartConfig {
	config := &ChartConfig{Kind: ChartHistogram, Title: title}

	var total float64
	for _, b := range bins {
		total += float64(b.Count)
	}
	for _, b := range bins {
		v := float64(b.Count)
		p := ChartPoint{
			Label: fmt.Sprintf("%.1f-%.1f", b.Lower, b.Upper),
			Value: v,
			Color: defaultColors[0],
		}
		if total > 0 {
			p.Percent = RoundTo2(v / total * 100)
		}
		config.Points = append(config.Points, p)
		config.Max = math.Max(config.Max, v)
	}
	return config
}

// RoundTo2 rounds to two decimal places
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
