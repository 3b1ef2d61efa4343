package library

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ytget/audion/internal/model"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
}

func TestLoad_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"index", "Name", "Artist", "Genre", "Language", "Duration"},
		{0, "Sunshine Again", "Band A", "Pop", "English", "03:30"},
		{1, "Quiet Storm", "Band B", "Jazz", "French", "1:02:00"},
		{},
		{2, "Fire Walk", "Band C", "Metal", "English", "bad"},
	})

	lib, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if lib.Len() != 3 {
		t.Fatalf("Expected 3 songs (blank row dropped), got %d", lib.Len())
	}

	songs := lib.Songs()
	if songs[0].Title != "Sunshine Again" || songs[0].DurationMin != 3.5 || songs[0].Mood != model.MoodHappy {
		t.Errorf("Unexpected first song: %+v", songs[0])
	}
	if songs[1].DurationMin != 62 {
		t.Errorf("Expected 62 minutes, got %v", songs[1].DurationMin)
	}
	if songs[2].DurationMin != 0 {
		t.Errorf("Malformed duration should parse to 0, got %v", songs[2].DurationMin)
	}
	for i, s := range songs {
		if s.Index != i {
			t.Errorf("Song %q has index %d, expected %d", s.Title, s.Index, i)
		}
		if s.ID == "" {
			t.Errorf("Song %q has empty ID", s.Title)
		}
	}
}

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.csv")
	content := "Name,Artist,Genre,Language,Duration\n" +
		"Lonely Road,Singer,Country,English,04:00\n" +
		",,,,\n" +
		"Short,Only Name\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	lib, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lib.Len() != 2 {
		t.Fatalf("Expected 2 songs, got %d", lib.Len())
	}

	songs := lib.Songs()
	if songs[0].Mood != model.MoodSad {
		t.Errorf("Expected Sad mood, got %s", songs[0].Mood)
	}
	if songs[1].Genre != "" || songs[1].Duration != "" {
		t.Errorf("Missing cells should be blank, got %+v", songs[1])
	}
}

func TestLoad_MoodColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.csv")
	content := "Name,Artist,Genre,Language,Duration,Mood\n" +
		"Lonely Road,Singer,Country,English,04:00,Confident\n" +
		"Sunshine,Band,Pop,English,03:00,Unknown\n" +
		"Quiet Night,Band,Jazz,English,03:00,melancholic\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	lib, err := NewLoader(nil).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		title    string
		expected model.Mood
	}{
		{"Lonely Road", model.MoodConfident}, // recorded mood is kept
		{"Sunshine", model.MoodHappy},        // Unknown is reclassified
		{"Quiet Night", model.MoodCalm},      // unrecognized label is reclassified
	}
	for i, tt := range tests {
		song := lib.Songs()[i]
		if song.Title != tt.title || song.Mood != tt.expected {
			t.Errorf("Row %d: expected %s with mood %s, got %s with %s", i, tt.title, tt.expected, song.Title, song.Mood)
		}
	}
}

func TestLoad_MissingNameColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.csv")
	if err := os.WriteFile(path, []byte("Title,Artist\nA,B\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := NewLoader(nil).Load(path)
	if !errors.Is(err, ErrMissingNameColumn) {
		t.Errorf("Expected ErrMissingNameColumn, got %v", err)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.ods")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := NewLoader(nil).Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadOrSample_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.xlsx")

	lib, usedSample, err := NewLoader(nil).LoadOrSample(path)
	if err == nil {
		t.Error("Expected the load error to be reported")
	}
	if !usedSample {
		t.Error("Expected sample dataset to be used")
	}
	if lib == nil || lib.Len() != len(SampleRows) {
		t.Fatalf("Expected %d sample songs, got %v", len(SampleRows), lib)
	}
}

func TestLoadOrSample_MissingNameColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"Title", "Artist"},
		{"A", "B"},
	})

	lib, usedSample, err := NewLoader(nil).LoadOrSample(path)
	if !usedSample || !errors.Is(err, ErrMissingNameColumn) {
		t.Errorf("Expected sample fallback with ErrMissingNameColumn, got usedSample=%v err=%v", usedSample, err)
	}
	if lib.Len() != len(SampleRows) {
		t.Errorf("Expected sample library, got %d songs", lib.Len())
	}
}

func TestSample_Tags(t *testing.T) {
	lib := NewLoader(rand.New(rand.NewPCG(1, 2))).Sample()

	expected := map[string]model.Mood{
		"Unstoppable":       model.MoodHappy,
		"Faded":             model.MoodEnergetic,
		"LoFi Nights":       model.MoodCalm,
		"Melancholy Ballad": model.MoodRomantic,
		"Dancefloor Dream":  model.MoodEnergetic,
	}

	for _, s := range lib.Songs() {
		want, ok := expected[s.Title]
		if !ok {
			t.Errorf("Unexpected sample song %q", s.Title)
			continue
		}
		if s.Mood != want {
			t.Errorf("Sample %q: expected mood %s, got %s", s.Title, want, s.Mood)
		}
		if s.DurationMin <= 0 {
			t.Errorf("Sample %q: expected positive duration, got %v", s.Title, s.DurationMin)
		}
	}
}

func TestFromRows_Empty(t *testing.T) {
	if _, err := NewLoader(nil).FromRows(nil); !errors.Is(err, ErrMissingNameColumn) {
		t.Errorf("Expected ErrMissingNameColumn for empty input, got %v", err)
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	for _, ext := range []string{".xlsx", ".csv"} {
		found := false
		for _, e := range exts {
			if e == ext {
				found = true
			}
		}
		if !found {
			t.Errorf("SupportedExtensions() = %v, missing %s", exts, ext)
		}
	}
}
