package mood

import (
	"strings"

	"github.com/ytget/audion/internal/model"
)

// rule maps a lower-case substring to a mood
type rule struct {
	key  string
	mood model.Mood
}

// keywordSet lists title keywords for a single mood
type keywordSet struct {
	mood  model.Mood
	words []string
}

// genreRules is consulted first; order matters since the first substring hit wins.
var genreRules = []rule{
	{"lofi", model.MoodCalm},
	{"lo-fi", model.MoodCalm},
	{"lo fi", model.MoodCalm},
	{"indie", model.MoodCalm},
	{"romantic", model.MoodRomantic},
	{"pop", model.MoodHappy},
	{"sad", model.MoodSad},
	{"classical", model.MoodCalm},
	{"edm", model.MoodEnergetic},
	{"dance", model.MoodEnergetic},
	{"rock", model.MoodEnergetic},
	{"r&b", model.MoodRomantic},
	{"soul", model.MoodRomantic},
}

// titleKeywords follows the declaration order of the primary moods.
var titleKeywords = []keywordSet{
	{model.MoodHappy, []string{"happy", "joy", "sun", "sunshine", "smile", "bright", "good", "fun", "dance", "party", "better", "alive", "smiling", "golden"}},
	{model.MoodSad, []string{"sad", "lonely", "cry", "tears", "heartbreak", "broken", "miss", "lost", "blue", "alone"}},
	{model.MoodEnergetic, []string{"fire", "power", "wild", "run", "loud", "fast", "hype", "energy", "rock", "boom", "beat", "crazy"}},
	{model.MoodCalm, []string{"calm", "soft", "slow", "chill", "lofi", "peace", "relax", "quiet", "soothing", "sleep"}},
	{model.MoodRomantic, []string{"love", "lover", "heart", "kiss", "romantic", "baby", "sweet", "darling", "mine", "forever"}},
}

// fallbackRules is used only when neither genreRules nor titleKeywords match.
var fallbackRules = []rule{
	{"pop", model.MoodHappy},
	{"dance", model.MoodParty},
	{"edm", model.MoodEnergetic},
	{"rock", model.MoodIntense},
	{"indie", model.MoodChill},
	{"folk", model.MoodCalm},
	{"ballad", model.MoodRomantic},
	{"romantic", model.MoodRomantic},
	{"hip hop", model.MoodConfident},
	{"r&b", model.MoodSmooth},
	{"k-pop", model.MoodEnergetic},
	{"bollywood", model.MoodRomantic},
}

// Classify returns the mood for a song. It never fails: when nothing matches
// the result is model.MoodMixed.
func Classify(title, genre string) model.Mood {
	if m := Detect(title, genre); m != model.MoodUnknown {
		return m
	}
	return InferFromGenre(genre)
}

// Detect checks the genre table and then the title keywords. It returns
// model.MoodUnknown when neither produces a match.
func Detect(title, genre string) model.Mood {
	title = strings.ToLower(title)
	genre = strings.ToLower(genre)

	if m, ok := matchRules(genreRules, genre); ok {
		return m
	}

	for _, set := range titleKeywords {
		for _, w := range set.words {
			if strings.Contains(title, w) {
				return set.mood
			}
		}
	}
	return model.MoodUnknown
}

// InferFromGenre applies the secondary genre table, defaulting to model.MoodMixed.
func InferFromGenre(genre string) model.Mood {
	if m, ok := matchRules(fallbackRules, strings.ToLower(genre)); ok {
		return m
	}
	return model.MoodMixed
}

func matchRules(rules []rule, text string) (model.Mood, bool) {
	if text == "" {
		return "", false
	}
	for _, r := range rules {
		if strings.Contains(text, r.key) {
			return r.mood, true
		}
	}
	return "", false
}
