package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/audion/internal/config"
	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/stats"
)

func testSong(id, title, artist string, m model.Mood) *model.Song {
	return &model.Song{
		ID: id, Title: title, Artist: artist, Genre: "Pop", Language: "English",
		Duration: "03:00", DurationMin: 3, Mood: m,
		Features: model.AudioFeatures{Energy: 0.5, Danceability: 0.8, Valence: 0.6, Tempo: 100},
	}
}

func TestSongRow(t *testing.T) {
	test.NewApp()
	row := NewSongRow(NewLocalization())

	var added, removed []string
	row.SetCallbacks(
		func(id string) { added = append(added, id) },
		func(id string) { removed = append(removed, id) },
	)

	song := testSong("s1", "Unstoppable", "Sia", model.MoodHappy)
	row.SetSong(song, false)

	if row.titleLabel.Text != "Unstoppable | Sia" {
		t.Errorf("Unexpected title %q", row.titleLabel.Text)
	}
	if row.durationLabel.Text != "3:00" || row.moodLabel.Text != "Happy" {
		t.Errorf("Unexpected columns %q %q", row.durationLabel.Text, row.moodLabel.Text)
	}

	test.Tap(row.toggleBtn)
	row.DoubleTapped(&fyne.PointEvent{})
	if len(added) != 2 || added[0] != "s1" {
		t.Errorf("Expected two add callbacks, got %v", added)
	}

	row.SetSong(song, true)
	if row.toggleBtn.Text != IconRemove {
		t.Errorf("Expected remove toggle, got %q", row.toggleBtn.Text)
	}
	test.Tap(row.toggleBtn)
	if len(removed) != 1 || removed[0] != "s1" {
		t.Errorf("Expected one remove callback, got %v", removed)
	}
}

func TestQueueEntryText(t *testing.T) {
	song := testSong("s1", "Faded", "Alan Walker", model.MoodEnergetic)

	if got := QueueEntryText(0, song); got != "1. Faded | Alan Walker" {
		t.Errorf("QueueEntryText() = %q", got)
	}
}

func TestTrackFeatureText(t *testing.T) {
	song := testSong("s1", "Faded", "Alan Walker", model.MoodEnergetic)

	expected := "2. Faded | Alan Walker • Energetic • energy 0.5 · dance 0.8 · valence 0.6 · 100 bpm"
	if got := TrackFeatureText(1, song); got != expected {
		t.Errorf("TrackFeatureText() = %q, expected %q", got, expected)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.Color
	}{
		{"#6366F1", color.NRGBA{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF}},
		{"22C55E", color.NRGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF}},
		{"#XYZ", ColorAccent},
		{"", ColorAccent},
	}

	for _, tt := range tests {
		if got := parseHexColor(tt.in); got != tt.expected {
			t.Errorf("parseHexColor(%q) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestScaled(t *testing.T) {
	if got := scaled(5, 10, 200); got != 100 {
		t.Errorf("Expected half width, got %v", got)
	}
	if got := scaled(0.001, 10, 200); got != 2 {
		t.Errorf("Expected minimum sliver, got %v", got)
	}
	if got := scaled(3, 0, 200); got != 0 {
		t.Errorf("Expected zero for empty chart, got %v", got)
	}
}

func TestNewChartView(t *testing.T) {
	test.NewApp()
	songs := []*model.Song{
		testSong("1", "A", "X", model.MoodHappy),
		testSong("2", "B", "Y", model.MoodCalm),
	}

	configs := []*stats.ChartConfig{
		nil,
		stats.BuildChart("Artists", stats.ChartBar, stats.CountBy(songs, stats.FieldArtist, 0)),
		stats.BuildChart("Moods", stats.ChartDonut, stats.CountBy(songs, stats.FieldMood, 0)),
		stats.BuildHistogramChart("Lengths", stats.Histogram(stats.Durations(songs), 3)),
	}
	for _, c := range configs {
		if view := NewChartView(c, "No data"); view == nil || view.MinSize().IsZero() {
			t.Errorf("Expected a drawable chart for %+v", c)
		}
	}
}

func TestDashboardCharts(t *testing.T) {
	l := NewLocalization()
	songs := []*model.Song{testSong("1", "A", "X", model.MoodHappy)}

	charts := DashboardCharts(songs, l)
	kinds := []stats.ChartKind{stats.ChartDonut, stats.ChartBar, stats.ChartPie, stats.ChartDonut, stats.ChartHistogram}
	if len(charts) != len(kinds) {
		t.Fatalf("Expected %d charts, got %d", len(kinds), len(charts))
	}
	for i, c := range charts {
		if c.Kind != kinds[i] {
			t.Errorf("Chart %d: expected %s, got %s", i, kinds[i], c.Kind)
		}
	}
	if charts[1].Title != "Top Artists" {
		t.Errorf("Unexpected chart title %q", charts[1].Title)
	}
}

func TestWrappedHeadline(t *testing.T) {
	l := NewLocalization()
	songs := []*model.Song{testSong("1", "A", "X", model.MoodHappy), testSong("2", "B", "Y", model.MoodHappy)}

	if got := WrappedHeadline(songs, stats.Summarize(songs), l); got != "2 songs • 6:00 • Happy vibes" {
		t.Errorf("WrappedHeadline() = %q", got)
	}
}

func TestShowDashboard(t *testing.T) {
	app := test.NewApp()
	l := NewLocalization()

	if win := ShowDashboard(app, nil, l); win != nil {
		t.Error("Expected no dashboard for an empty playlist")
	}

	win := ShowDashboard(app, []*model.Song{testSong("1", "A", "X", model.MoodHappy)}, l)
	if win == nil {
		t.Fatal("Expected dashboard window")
	}
	if win.Title() != IconWrapped+" Audion Wrapped · Ultimate Analysis" {
		t.Errorf("Unexpected window title %q", win.Title())
	}
	win.Close()
}

func TestRecommendDialog(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	songs := []*model.Song{
		testSong("1", "A", "X", model.MoodCalm),
		testSong("2", "B", "Y", model.MoodSad),
	}

	var added []string
	rd := NewRecommendDialog(songs, NewLocalization(), window, func(id string) { added = append(added, id) })
	rd.SetChecked(1, true)

	rd.onConfirm(false)
	if len(added) != 0 {
		t.Errorf("Cancel should add nothing, got %v", added)
	}

	rd.onConfirm(true)
	if len(added) != 1 || added[0] != "2" {
		t.Errorf("Expected only the checked song, got %v", added)
	}
}

func TestSettingsDialog_Apply(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)

	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.loadCurrentSettings()

	sd.libraryEntry.SetText("/music/new.xlsx")
	sd.exportDirEntry.SetText("/tmp/exports")
	sd.recommendEntry.SetText("50")
	sd.languageSelect.SetSelected("pt")
	sd.revealCheck.SetChecked(false)

	change := sd.apply()

	if !change.LibraryPath || !change.Language || change.LogLevel {
		t.Errorf("Unexpected change set %+v", change)
	}
	if settings.GetLibraryPath() != "/music/new.xlsx" {
		t.Errorf("Library path not saved: %s", settings.GetLibraryPath())
	}
	if settings.GetExportDirectory() != "/tmp/exports" {
		t.Errorf("Export directory not saved: %s", settings.GetExportDirectory())
	}
	if settings.GetRecommendationCount() != config.MaxRecommendations {
		t.Errorf("Expected clamped recommendation count, got %d", settings.GetRecommendationCount())
	}
	if settings.GetRevealAfterExport() {
		t.Error("Expected reveal to be disabled")
	}
}
