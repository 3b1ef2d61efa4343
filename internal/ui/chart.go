package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audion/internal/stats"
)

// parseHexColor converts "#RRGGBB" into a color, falling back to the accent
func parseHexColor(hex string) color.Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return ColorAccent
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorAccent
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// fixedWidth pins obj to width w using a transparent spacer underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// scaled returns value/top of full, never below a visible sliver for non-zero values
func scaled(value, top float64, full float32) float32 {
	if top <= 0 || value <= 0 {
		return 0
	}
	size := float32(value / top * float64(full))
	if size < 2 {
		size = 2
	}
	return size
}

// NewChartView draws a chart config with canvas primitives. Bar charts become
// horizontal bars, histograms vertical columns, and pie/donut charts a single
// proportional share strip with a percentage legend.
func NewChartView(config *stats.ChartConfig, emptyText string) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	if config != nil {
		title.SetText(config.Title)
	}

	var body fyne.CanvasObject
	switch {
	case config.IsEmpty():
		body = widget.NewLabelWithStyle(emptyText, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	case config.Kind == stats.ChartHistogram:
		body = histogramBody(config)
	case config.Kind == stats.ChartPie || config.Kind == stats.ChartDonut:
		body = shareBody(config)
	default:
		body = barBody(config)
	}

	background := canvas.NewRectangle(ColorCard)
	return container.NewStack(background, container.NewPadded(container.NewBorder(title, nil, nil, nil, body)))
}

func barBody(config *stats.ChartConfig) fyne.CanvasObject {
	rows := container.NewVBox()
	for _, p := range config.Points {
		label := widget.NewLabel(p.Label)
		label.Truncation = fyne.TextTruncateEllipsis

		bar := canvas.NewRectangle(parseHexColor(p.Color))
		bar.SetMinSize(fyne.NewSize(scaled(p.Value, config.Max, ChartBarWidth), ChartBarHeight))

		value := canvas.NewText(strconv.FormatFloat(p.Value, 'f', -1, 64), ColorMuted)
		rows.Add(container.NewBorder(nil, nil, fixedWidth(ChartLabelWidth, label), nil,
			container.NewHBox(container.NewCenter(bar), value)))
	}
	return rows
}

func histogramBody(config *stats.ChartConfig) fyne.CanvasObject {
	columns := make([]fyne.CanvasObject, 0, len(config.Points))
	for _, p := range config.Points {
		bar := canvas.NewRectangle(parseHexColor(p.Color))
		bar.SetMinSize(fyne.NewSize(HistogramBarW, scaled(p.Value, config.Max, HistogramHeight)))

		count := canvas.NewText(strconv.FormatFloat(p.Value, 'f', -1, 64), ColorMuted)
		count.Alignment = fyne.TextAlignCenter
		count.TextSize = 10

		columns = append(columns, container.NewVBox(layout.NewSpacer(), count, bar))
	}

	axis := container.NewBorder(nil, nil,
		canvas.NewText(config.Points[0].Label, ColorMuted), canvas.NewText(config.Points[len(config.Points)-1].Label, ColorMuted))
	return container.NewBorder(nil, axis, nil, nil, container.NewGridWithColumns(len(columns), columns...))
}

func shareBody(config *stats.ChartConfig) fyne.CanvasObject {
	strip := container.NewHBox()
	legend := container.NewVBox()

	swatch := IconSwatch
	if config.Kind == stats.ChartDonut {
		swatch = IconRing
	}

	for _, p := range config.Points {
		c := parseHexColor(p.Color)

		segment := canvas.NewRectangle(c)
		segment.SetMinSize(fyne.NewSize(scaled(p.Percent, 100, ChartBarWidth+ChartLabelWidth), ChartShareHeight))
		strip.Add(segment)

		mark := canvas.NewText(swatch, c)
		label := widget.NewLabel(p.Label)
		label.Truncation = fyne.TextTruncateEllipsis
		percent := canvas.NewText(fmt.Sprintf(PercentFormat, p.Percent), ColorMuted)
		legend.Add(container.NewBorder(nil, nil, mark, percent, label))
	}

	return container.NewVBox(container.NewCenter(strip), legend)
}
