package mood

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/ytget/audion/internal/model"
)

// Feature simulation constants
const (
	HighEnergy         = 0.7
	BaseEnergy         = 0.5
	HighDanceability   = 0.8
	BaseDanceability   = 0.4
	HighValence        = 0.6
	BaseValence        = 0.4
	EnergeticTempoMean = 128
	DefaultTempoMean   = 100
	TempoStdDev        = 15
	MinTempo           = 60
)

// SimulateFeatures derives plausible audio features from genre and mood.
// Only the tempo is random; a nil rng yields the mean tempo.
func SimulateFeatures(genre string, m model.Mood, rng *rand.Rand) model.AudioFeatures {
	genre = strings.ToLower(genre)
	moodText := strings.ToLower(m.String())

	f := model.AudioFeatures{
		Energy:       BaseEnergy,
		Danceability: BaseDanceability,
		Valence:      BaseValence,
	}
	if strings.Contains(genre, "edm") || strings.Contains(genre, "dance") {
		f.Energy = HighEnergy
	}
	if strings.Contains(genre, "pop") || strings.Contains(genre, "dance") {
		f.Danceability = HighDanceability
	}
	if strings.Contains(moodText, "happy") || strings.Contains(moodText, "party") {
		f.Valence = HighValence
	}

	mean := float64(DefaultTempoMean)
	if f.Energy > 0.6 {
		mean = EnergeticTempoMean
	}
	tempo := mean
	if rng != nil {
		tempo = mean + rng.NormFloat64()*TempoStdDev
	}
	f.Tempo = max(MinTempo, int(math.Round(tempo)))
	return f
}
