package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audion/internal/model"
)

// QueuePanel lists the playlist in play order with a remove button per entry
type QueuePanel struct {
	localization *Localization

	songs []*model.Song

	// UI components
	container *fyne.Container
	title     *widget.Label
	list      *widget.List

	onRemove func(songID string)
}

// NewQueuePanel creates the queue panel
func NewQueuePanel(localization *Localization) *QueuePanel {
	qp := &QueuePanel{localization: localization}
	qp.createUI()
	return qp
}

// createUI creates the user interface for the queue
func (qp *QueuePanel) createUI() {
	qp.title = widget.NewLabelWithStyle(qp.localization.GetText(KeyQueue), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	qp.list = widget.NewList(
		func() int {
			return len(qp.songs)
		},
		func() fyne.CanvasObject {
			return qp.createQueueRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			qp.updateQueueRow(id, obj)
		},
	)

	// Keep a few rows visible even when the sidebar is short
	minHeight := canvas.NewRectangle(ColorCard)
	minHeight.SetMinSize(fyne.NewSize(0, QueueRowH*QueueMinRows))

	qp.container = container.NewBorder(qp.title, nil, nil, nil, container.NewStack(minHeight, qp.list))
}

// createQueueRow creates a template queue row
func (qp *QueuePanel) createQueueRow() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	remove := widget.NewButton(IconClose, nil)
	remove.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, remove, label)
}

// updateQueueRow binds a template row to the song at position id
func (qp *QueuePanel) updateQueueRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(qp.songs) {
		return
	}
	song := qp.songs[id]

	row := obj.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	remove := row.Objects[1].(*widget.Button)

	label.SetText(QueueEntryText(id, song))
	remove.OnTapped = func() {
		if qp.onRemove != nil {
			qp.onRemove(song.ID)
		}
	}
}

// QueueEntryText formats a queue line as "n. Title | Artist"
func QueueEntryText(position int, song *model.Song) string {
	return fmt.Sprintf("%d. %s | %s", position+1, song.Title, song.Artist)
}

// Container returns the panel root
func (qp *QueuePanel) Container() *fyne.Container {
	return qp.container
}

// SetOnRemove sets the remove callback
func (qp *QueuePanel) SetOnRemove(onRemove func(songID string)) {
	qp.onRemove = onRemove
}

// SetSongs replaces the queue contents
func (qp *QueuePanel) SetSongs(songs []*model.Song) {
	qp.songs = songs
	qp.list.Refresh()
}

// Len returns the number of queued songs
func (qp *QueuePanel) Len() int {
	return len(qp.songs)
}

// RefreshTexts re-reads localized captions
func (qp *QueuePanel) RefreshTexts() {
	qp.title.SetText(qp.localization.GetText(KeyQueue))
}
