package stats

import (
	"math/rand/v2"

	"github.com/ytget/audion/internal/model"
)

// DefaultRecommendations is the number of suggestions offered at once
const DefaultRecommendations = 8

// contrastMoods suggests moods that vary the vibe of a dominant mood
var contrastMoods = map[model.Mood][]model.Mood{
	model.MoodHappy:     {model.MoodSad, model.MoodCalm, model.MoodRomantic},
	model.MoodSad:       {model.MoodHappy, model.MoodEnergetic},
	model.MoodEnergetic: {model.MoodCalm, model.MoodRomantic},
	model.MoodCalm:      {model.MoodEnergetic, model.MoodHappy},
	model.MoodRomantic:  {model.MoodEnergetic, model.MoodHappy},
	model.MoodMixed:     {model.MoodCalm, model.MoodHappy},
}

var defaultContrast = []model.Mood{model.MoodCalm, model.MoodHappy}

// ContrastMoods returns the moods that contrast with dominant
func ContrastMoods(dominant model.Mood) []model.Mood {
	if moods, ok := contrastMoods[dominant]; ok {
		return moods
	}
	return defaultContrast
}

// Recommend samples up to n library songs outside the playlist whose mood
// contrasts with the playlist's dominant mood. When no song has a contrasting
// mood, any non-member may be picked. An empty playlist yields nil.
func Recommend(playlist, library []*model.Song, n int, rng *rand.Rand) []*model.Song {
	if len(playlist) == 0 || n <= 0 {
		return nil
	}

	members := make(map[string]struct{}, len(playlist))
	for _, s := range playlist {
		members[s.ID] = struct{}{}
	}

	wanted := make(map[model.Mood]struct{})
	for _, m := range ContrastMoods(Summarize(playlist).DominantMood) {
		wanted[m] = struct{}{}
	}

	var available, candidates []*model.Song
	for _, s := range library {
		if _, ok := members[s.ID]; ok {
			continue
		}
		available = append(available, s)
		if _, ok := wanted[s.Mood]; ok {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		candidates = available
	}

	return sample(candidates, n, rng)
}

// sample picks up to n items without replacement, keeping the input slice intact
func sample(songs []*model.Song, n int, rng *rand.Rand) []*model.Song {
	pool := make([]*model.Song, len(songs))
	copy(pool, songs)
	if n > len(pool) {
		n = len(pool)
	}
	if rng == nil {
		return pool[:n]
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
