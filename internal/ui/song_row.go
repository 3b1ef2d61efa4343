package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/stats"
)

// SongRow is one line of the library table: title and artist on the left,
// genre, duration and mood in fixed columns, and an add/remove toggle.
// Double-tap adds the song; secondary tap opens a context menu.
type SongRow struct {
	widget.BaseWidget

	song         *model.Song
	inPlaylist   bool
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	genreLabel    *widget.Label
	durationLabel *widget.Label
	moodLabel     *widget.Label
	toggleBtn     *widget.Button

	// Callbacks
	onAdd    func(songID string)
	onRemove func(songID string)
}

// NewSongRow creates a new song row widget
func NewSongRow(localization *Localization) *SongRow {
	sr := &SongRow{localization: localization}
	sr.ExtendBaseWidget(sr)
	sr.createUI()
	return sr
}

// SetCallbacks sets the action callbacks
func (sr *SongRow) SetCallbacks(onAdd, onRemove func(songID string)) {
	sr.onAdd = onAdd
	sr.onRemove = onRemove
}

// SetSong updates the row with new song data
func (sr *SongRow) SetSong(song *model.Song, inPlaylist bool) {
	sr.song = song
	sr.inPlaylist = inPlaylist
	sr.updateFromSong()
}

// Song returns the displayed song
func (sr *SongRow) Song() *model.Song {
	return sr.song
}

// createUI creates the UI components
func (sr *SongRow) createUI() {
	sr.titleLabel = widget.NewLabel("")
	sr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	sr.genreLabel = widget.NewLabel("")
	sr.genreLabel.Truncation = fyne.TextTruncateEllipsis
	sr.durationLabel = widget.NewLabel("")
	sr.durationLabel.Alignment = fyne.TextAlignCenter
	sr.durationLabel.TextStyle = fyne.TextStyle{Monospace: true}
	sr.moodLabel = widget.NewLabel("")

	sr.toggleBtn = widget.NewButton(IconAdd, sr.toggle)
	sr.toggleBtn.Importance = widget.LowImportance
}

// updateFromSong copies song fields into the labels
func (sr *SongRow) updateFromSong() {
	if sr.song == nil {
		sr.titleLabel.SetText("")
		sr.genreLabel.SetText("")
		sr.durationLabel.SetText("")
		sr.moodLabel.SetText("")
		return
	}

	sr.titleLabel.SetText(sr.song.GetDisplayTitle())
	sr.genreLabel.SetText(sr.song.Genre)
	sr.durationLabel.SetText(stats.FormatMinutes(sr.song.DurationMin))
	sr.moodLabel.SetText(sr.song.Mood.String())
	sr.titleLabel.TextStyle = fyne.TextStyle{Bold: sr.inPlaylist}
	sr.titleLabel.Refresh()

	if sr.inPlaylist {
		sr.toggleBtn.SetText(IconRemove)
	} else {
		sr.toggleBtn.SetText(IconAdd)
	}
}

func (sr *SongRow) toggle() {
	if sr.song == nil {
		return
	}
	if sr.inPlaylist {
		if sr.onRemove != nil {
			sr.onRemove(sr.song.ID)
		}
		return
	}
	if sr.onAdd != nil {
		sr.onAdd(sr.song.ID)
	}
}

// DoubleTapped adds the song to the playlist
func (sr *SongRow) DoubleTapped(_ *fyne.PointEvent) {
	if sr.song != nil && sr.onAdd != nil {
		sr.onAdd(sr.song.ID)
	}
}

// TappedSecondary shows the add/remove context menu
func (sr *SongRow) TappedSecondary(ev *fyne.PointEvent) {
	if sr.song == nil {
		return
	}
	c := fyne.CurrentApp().Driver().CanvasForObject(sr)
	if c == nil {
		return
	}

	id := sr.song.ID
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(sr.localization.GetText(KeyAddToPlaylist), func() {
			if sr.onAdd != nil {
				sr.onAdd(id)
			}
		}),
		fyne.NewMenuItem(sr.localization.GetText(KeyRemoveFromList), func() {
			if sr.onRemove != nil {
				sr.onRemove(id)
			}
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, c, ev.AbsolutePosition)
}

// CreateRenderer creates the widget renderer
func (sr *SongRow) CreateRenderer() fyne.WidgetRenderer {
	columns := container.NewHBox(
		fixedWidth(GenreLabelWidth, sr.genreLabel),
		fixedWidth(DurationLabelWidth, sr.durationLabel),
		fixedWidth(MoodLabelWidth, sr.moodLabel),
		sr.toggleBtn,
	)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, columns, sr.titleLabel))
}

// NewSongHeader renders the column captions aligned with SongRow
func NewSongHeader(localization *Localization) fyne.CanvasObject {
	bold := fyne.TextStyle{Bold: true}
	title := widget.NewLabelWithStyle(localization.GetText(KeyColumnTitle), fyne.TextAlignLeading, bold)
	genre := widget.NewLabelWithStyle(localization.GetText(KeyColumnGenre), fyne.TextAlignLeading, bold)
	duration := widget.NewLabelWithStyle(localization.GetText(KeyColumnDuration), fyne.TextAlignCenter, bold)
	mood := widget.NewLabelWithStyle(localization.GetText(KeyColumnMood), fyne.TextAlignLeading, bold)
	spacer := widget.NewButton(IconAdd, nil)
	spacer.Importance = widget.LowImportance
	spacer.Hide()

	columns := container.NewHBox(
		fixedWidth(GenreLabelWidth, genre),
		fixedWidth(DurationLabelWidth, duration),
		fixedWidth(MoodLabelWidth, mood),
		fixedWidth(spacer.MinSize().Width, spacer),
	)
	return container.NewBorder(nil, nil, nil, columns, title)
}
