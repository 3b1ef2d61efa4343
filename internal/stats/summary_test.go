package stats

import (
	"math"
	"testing"

	"github.com/ytget/audion/internal/model"
)

func TestSummarize(t *testing.T) {
	s := Summarize(testSongs())

	if s.Count != 4 {
		t.Errorf("Expected count 4, got %d", s.Count)
	}
	if math.Abs(s.TotalMin-13) > 1e-9 {
		t.Errorf("Expected total 13, got %v", s.TotalMin)
	}
	if math.Abs(s.AvgMin-3.25) > 1e-9 {
		t.Errorf("Expected average 3.25, got %v", s.AvgMin)
	}
	if s.TopArtist != "Sia" {
		t.Errorf("Expected top artist Sia, got %s", s.TopArtist)
	}
	if s.TopGenre != "Pop" {
		t.Errorf("Expected top genre Pop, got %s", s.TopGenre)
	}
	// English and Hindi tie; English was seen first
	if s.TopLanguage != "English" {
		t.Errorf("Expected top language English, got %s", s.TopLanguage)
	}
	// Happy and Energetic tie; Happy was seen first
	if s.DominantMood != model.MoodHappy {
		t.Errorf("Expected dominant mood Happy, got %s", s.DominantMood)
	}
	if s.MoodDiversity != 2 {
		t.Errorf("Expected mood diversity 2, got %d", s.MoodDiversity)
	}
}

func TestSummarize_Empty(t *testing.T) {
	for _, songs := range [][]*model.Song{nil, {}} {
		s := Summarize(songs)

		if !s.IsEmpty() || s.TotalMin != 0 || s.AvgMin != 0 || s.MoodDiversity != 0 {
			t.Errorf("Expected zeroed summary, got %+v", s)
		}
		if s.TopArtist != NotAvailable || s.TopGenre != NotAvailable || s.TopLanguage != NotAvailable {
			t.Errorf("Expected N/A placeholders, got %+v", s)
		}
	}
}

func TestSummarize_BlankColumns(t *testing.T) {
	s := Summarize([]*model.Song{
		song("1", "", "", "  ", 2, model.MoodCalm),
	})

	if s.TopArtist != Unknown || s.TopGenre != Unknown || s.TopLanguage != Unknown {
		t.Errorf("Expected Unknown for all-blank columns, got %+v", s)
	}
}

func TestSummarize_AddRemoveRestoresStats(t *testing.T) {
	base := testSongs()[:3]
	before := Summarize(base)

	extra := song("9", "Other", "Rock", "Tamil", 7, model.MoodIntense)
	added := append(append([]*model.Song{}, base...), extra)
	if Summarize(added) == before {
		t.Fatal("Adding a song should change the summary")
	}

	after := Summarize(added[:len(added)-1])
	if after != before {
		t.Errorf("Summary after add/remove = %+v, expected %+v", after, before)
	}
}

func TestMode_SkipsBlank(t *testing.T) {
	songs := []*model.Song{
		song("1", "", "", "", 0, model.MoodMixed),
		song("2", "", "", "", 0, model.MoodMixed),
		song("3", "Solo", "", "", 0, model.MoodMixed),
	}
	if got := Mode(songs, func(s *model.Song) string { return s.Artist }); got != "Solo" {
		t.Errorf("Expected Solo, got %s", got)
	}
}
