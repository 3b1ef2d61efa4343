package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audion/internal/session"
	"github.com/ytget/audion/internal/stats"
)

// statLine is one caption/value card of the sidebar
type statLine struct {
	key     string
	caption *widget.Label
	value   *widget.Label
}

// StatsPanel shows library and playlist figures, refreshed from session snapshots
type StatsPanel struct {
	localization *Localization

	title     *widget.Label
	lines     []*statLine
	byKey     map[string]*statLine
	container *fyne.Container
}

// statKeys is the card order in the sidebar
var statKeys = []string{
	KeyLibrarySongs,
	KeyPlaylistSongs,
	KeyAvgDuration,
	KeyMoodDiversity,
	KeyLanguages,
	KeyPlaylistTotal,
	KeyPlaylistAvg,
	KeyTopArtist,
	KeyTopGenre,
}

// NewStatsPanel creates the stat cards
func NewStatsPanel(localization *Localization) *StatsPanel {
	sp := &StatsPanel{
		localization: localization,
		byKey:        make(map[string]*statLine, len(statKeys)),
	}

	sp.title = widget.NewLabelWithStyle(IconStats+" "+localization.GetText(KeyLiveStats), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	cards := container.NewVBox(sp.title)
	for _, key := range statKeys {
		line := &statLine{
			key:     key,
			caption: widget.NewLabel(localization.GetText(key)),
			value:   widget.NewLabelWithStyle(DashPlaceholder, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
		}
		line.value.Truncation = fyne.TextTruncateEllipsis
		sp.lines = append(sp.lines, line)
		sp.byKey[key] = line

		background := canvas.NewRectangle(ColorCard)
		cards.Add(container.NewStack(background, container.NewBorder(nil, nil, line.caption, nil, line.value)))
	}
	sp.container = cards
	return sp
}

// Container returns the panel root
func (sp *StatsPanel) Container() *fyne.Container {
	return sp.container
}

// Update fills the cards from a snapshot
func (sp *StatsPanel) Update(snap session.Snapshot) {
	sp.set(KeyLibrarySongs, strconv.Itoa(snap.Library.Songs))
	sp.set(KeyAvgDuration, stats.FormatMinutes(snap.Library.AvgMin))
	sp.set(KeyLanguages, strconv.Itoa(snap.Library.Languages))

	sp.set(KeyPlaylistSongs, strconv.Itoa(snap.PlaylistCount))
	sp.set(KeyMoodDiversity, strconv.Itoa(snap.Summary.MoodDiversity))
	sp.set(KeyPlaylistTotal, stats.FormatMinutes(snap.Summary.TotalMin))
	sp.set(KeyPlaylistAvg, stats.FormatMinutes(snap.Summary.AvgMin))
	sp.set(KeyTopArtist, snap.Summary.TopArtist)
	sp.set(KeyTopGenre, snap.Summary.TopGenre)
}

// Value returns the text of the card for key
func (sp *StatsPanel) Value(key string) string {
	if line, ok := sp.byKey[key]; ok {
		return line.value.Text
	}
	return ""
}

// RefreshTexts re-reads localized captions
func (sp *StatsPanel) RefreshTexts() {
	sp.title.SetText(IconStats + " " + sp.localization.GetText(KeyLiveStats))
	for _, line := range sp.lines {
		line.caption.SetText(sp.localization.GetText(line.key))
	}
}

func (sp *StatsPanel) set(key, value string) {
	if line, ok := sp.byKey[key]; ok {
		line.value.SetText(value)
	}
}
