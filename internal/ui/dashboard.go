package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/stats"
)

// DashboardCharts builds the Wrapped chart set for a playlist
func DashboardCharts(songs []*model.Song, l *Localization) []*stats.ChartConfig {
	return []*stats.ChartConfig{
		stats.BuildChart(l.GetText(KeyChartGenres), stats.ChartDonut, stats.CountBy(songs, stats.FieldGenre, TopGenres)),
		stats.BuildChart(l.GetText(KeyChartArtists), stats.ChartBar, stats.CountBy(songs, stats.FieldArtist, TopArtists)),
		stats.BuildChart(l.GetText(KeyChartLangs), stats.ChartPie, stats.CountBy(songs, stats.FieldLanguage, TopLanguages)),
		stats.BuildChart(l.GetText(KeyChartMoods), stats.ChartDonut, stats.CountBy(songs, stats.FieldMood, TopMoods)),
		stats.BuildHistogramChart(l.GetText(KeyChartLengths), stats.Histogram(stats.Durations(songs), stats.DefaultHistogramBins)),
	}
}

// WrappedHeadline renders "n songs • total • mood vibes"
func WrappedHeadline(songs []*model.Song, summary stats.Summary, l *Localization) string {
	mood := summary.DominantMood
	if len(songs) == 0 {
		mood = model.MoodMixed
	}
	return fmt.Sprintf(l.GetText(KeyWrappedStats), len(songs), stats.FormatMinutes(summary.TotalMin), mood)
}

// ShowDashboard opens the Wrapped window for the playlist. It returns nil and
// opens nothing when the playlist is empty.
func ShowDashboard(app fyne.App, songs []*model.Song, l *Localization) fyne.Window {
	if len(songs) == 0 {
		return nil
	}

	summary := stats.Summarize(songs)
	win := app.NewWindow(IconWrapped + " " + l.GetText(KeyWrappedTitle))

	heading := widget.NewLabelWithStyle(IconApp+" "+l.GetText(KeyWrappedHeader), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	headline := canvas.NewText(WrappedHeadline(songs, summary, l), ColorAccent)
	headline.TextStyle = fyne.TextStyle{Bold: true}
	header := container.NewStack(canvas.NewRectangle(ColorPanel),
		container.NewPadded(container.NewBorder(nil, nil, heading, headline)))

	charts := DashboardCharts(songs, l)
	empty := l.GetText(KeyNoChartData)

	insight := widget.NewLabel(stats.Insight(songs, summary))
	insight.Wrapping = fyne.TextWrapWord

	overview := container.NewVBox(
		container.NewGridWithColumns(2, NewChartView(charts[0], empty), NewChartView(charts[1], empty)),
		container.NewGridWithColumns(2, NewChartView(charts[2], empty), NewChartView(charts[3], empty)),
		container.NewStack(canvas.NewRectangle(ColorCard), container.NewPadded(insight)),
		NewChartView(charts[4], empty),
	)

	tabs := container.NewAppTabs(
		container.NewTabItem(IconStats+" "+l.GetText(KeyOverview), container.NewVScroll(overview)),
		container.NewTabItem(IconApp+" "+l.GetText(KeyTracks), trackFeatureList(songs)),
	)

	win.SetContent(container.NewBorder(header, nil, nil, nil, tabs))
	win.Resize(fyne.NewSize(DashboardWindowWidth, DashboardWindowHeight))
	win.Show()
	return win
}

// trackFeatureList shows each playlist song with its simulated audio features
func trackFeatureList(songs []*model.Song) fyne.CanvasObject {
	return widget.NewList(
		func() int { return len(songs) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(TrackFeatureText(id, songs[id]))
		},
	)
}

// TrackFeatureText formats one line of the Tracks tab
func TrackFeatureText(position int, s *model.Song) string {
	f := s.Features
	return fmt.Sprintf("%s%s%s%senergy %.1f · dance %.1f · valence %.1f · %d bpm",
		QueueEntryText(position, s), BulletSeparator, s.Mood, BulletSeparator,
		f.Energy, f.Danceability, f.Valence, f.Tempo)
}
