package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audion/internal/model"
)

// RecommendDialog lists mood-contrasting songs with a check box each and adds
// the checked ones to the playlist on confirm
type RecommendDialog struct {
	localization *Localization
	songs        []*model.Song
	checks       []*widget.Check
	onAdd        func(songID string)

	dialog *dialog.ConfirmDialog
}

// NewRecommendDialog creates the dialog for the given recommendations
func NewRecommendDialog(songs []*model.Song, localization *Localization, window fyne.Window, onAdd func(songID string)) *RecommendDialog {
	rd := &RecommendDialog{
		localization: localization,
		songs:        songs,
		onAdd:        onAdd,
	}

	hint := widget.NewLabelWithStyle(localization.GetText(KeyRecommendHint), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	rows := container.NewVBox()
	for _, s := range songs {
		check := widget.NewCheck(s.GetDisplayTitle()+BulletSeparator+s.Mood.String(), nil)
		rd.checks = append(rd.checks, check)
		rows.Add(check)
	}

	content := container.NewBorder(hint, nil, nil, nil, container.NewVScroll(rows))
	rd.dialog = dialog.NewCustomConfirm(
		localization.GetText(KeyRecommendationsTtl),
		localization.GetText(KeyAddSelected),
		localization.GetText(KeyClose),
		content,
		rd.onConfirm,
		window,
	)
	rd.dialog.Resize(fyne.NewSize(560, 420))
	return rd
}

// Show displays the dialog
func (rd *RecommendDialog) Show() {
	rd.dialog.Show()
}

// SetChecked marks the recommendation at index i
func (rd *RecommendDialog) SetChecked(i int, checked bool) {
	if i >= 0 && i < len(rd.checks) {
		rd.checks[i].SetChecked(checked)
	}
}

// onConfirm adds every checked song in list order
func (rd *RecommendDialog) onConfirm(confirmed bool) {
	if !confirmed || rd.onAdd == nil {
		return
	}
	for i, check := range rd.checks {
		if check.Checked {
			rd.onAdd(rd.songs[i].ID)
		}
	}
}
