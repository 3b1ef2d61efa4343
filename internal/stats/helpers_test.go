package stats

import "github.com/ytget/audion/internal/model"

func song(id, artist, genre, language string, minutes float64, m model.Mood) *model.Song {
	return &model.Song{
		ID:          id,
		Title:       "Song " + id,
		Artist:      artist,
		Genre:       genre,
		Language:    language,
		DurationMin: minutes,
		Mood:        m,
	}
}

func testSongs() []*model.Song {
	return []*model.Song{
		song("1", "Sia", "Pop", "English", 3, model.MoodHappy),
		song("2", "Alan Walker", "EDM", "English", 3.5, model.MoodEnergetic),
		song("3", "Sia", "Pop", "Hindi", 4, model.MoodHappy),
		song("4", "Neon Beats", "Dance", "Hindi", 2.5, model.MoodEnergetic),
	}
}
