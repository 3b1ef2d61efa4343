package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AudionTheme is a dark, compact theme with the indigo accent used across the app
type AudionTheme struct{}

// NewAudionTheme creates a new Audion theme
func NewAudionTheme() fyne.Theme {
	return &AudionTheme{}
}

// Color returns theme colors. The palette is dark regardless of the system variant.
func (t *AudionTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return ColorPanel
	case theme.ColorNameInputBackground, theme.ColorNameButton:
		return ColorCard
	case theme.ColorNameForeground:
		return ColorText
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorMuted
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorAccent
	case theme.ColorNameHover, theme.ColorNamePressed:
		return ColorAccentDark
	case theme.ColorNameSelection:
		return color.NRGBA{R: ColorAccent.R, G: ColorAccent.G, B: ColorAccent.B, A: 0x66}
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameSeparator:
		return ColorCard
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *AudionTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AudionTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *AudionTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
