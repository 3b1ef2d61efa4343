package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconApp       = "🎵"
	IconSettings  = "⚙"
	IconStats     = "📊"
	IconExport    = "💾"
	IconSummary   = "📝"
	IconRecommend = "✨"
	IconWrapped   = "🎨"
	IconAdd       = "➕"
	IconRemove    = "➖"
	IconClose     = "×"
	IconSwatch    = "■"
	IconRing      = "◯"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	BulletSeparator    = " • "
	DashPlaceholder    = "—"
	PercentFormat      = "%.1f%%"
)

// Palette shared by the theme and charts
var (
	ColorBackground = color.NRGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}
	ColorPanel      = color.NRGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xFF}
	ColorCard       = color.NRGBA{R: 0x0B, G: 0x12, B: 0x20, A: 0xFF}
	ColorAccent     = color.NRGBA{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF}
	ColorAccentDark = color.NRGBA{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF}
	ColorSuccess    = color.NRGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF}
	ColorText       = color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
	ColorMuted      = color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
)

// Window sizing
const (
	MainWindowWidth       float32 = 1280
	MainWindowHeight      float32 = 780
	DashboardWindowWidth  float32 = 1100
	DashboardWindowHeight float32 = 900
	SidebarOffset                 = 0.72
)

// Layout sizing (SongRow / lists)
const (
	GenreLabelWidth    float32 = 130
	DurationLabelWidth float32 = 64
	MoodLabelWidth     float32 = 96

	RowMinWidth  float32 = 420
	QueueMinRows         = 6
	QueueRowH    float32 = 30
)

// Chart sizing
const (
	ChartLabelWidth  float32 = 140
	ChartBarWidth    float32 = 260
	ChartBarHeight   float32 = 14
	ChartShareHeight float32 = 18
	HistogramHeight  float32 = 140
	HistogramBarW    float32 = 18
)

// Dashboard chart limits
const (
	TopGenres    = 6
	TopArtists   = 8
	TopLanguages = 5
	TopMoods     = 6
)
