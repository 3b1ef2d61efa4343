package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audion/internal/config"
	"github.com/ytget/audion/internal/library"
)

// SettingsChange reports which stored settings were modified on save
type SettingsChange struct {
	LibraryPath bool
	Language    bool
	LogLevel    bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsChange)

	// UI components
	libraryEntry   *widget.Entry
	exportDirEntry *widget.Entry
	recommendEntry *widget.Entry
	logLevelSelect *widget.Select
	languageSelect *widget.Select
	revealCheck    *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(SettingsChange)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Library spreadsheet selection
	sd.libraryEntry = widget.NewEntry()
	sd.libraryEntry.SetPlaceHolder("audion.xlsx")
	browseFileBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseLibrary)
	libraryRow := container.NewBorder(nil, nil, nil, browseFileBtn, sd.libraryEntry)

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder("Export directory path")
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Recommendation count
	sd.recommendEntry = widget.NewEntry()
	sd.recommendEntry.SetPlaceHolder(strconv.Itoa(config.MinRecommendations) + "-" + strconv.Itoa(config.MaxRecommendations))

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealAfterExport), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyLibraryFile)+":"),
		libraryRow,

		widget.NewLabel(l.GetText(KeyExportDirectory)+":"),
		exportDirRow,
		sd.revealCheck,

		widget.NewLabel(l.GetText(KeyRecommendationCount)+":"),
		sd.recommendEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(l.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 440))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.libraryEntry.SetText(sd.settings.GetLibraryPath())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.recommendEntry.SetText(strconv.Itoa(sd.settings.GetRecommendationCount()))
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterExport())
}

// onBrowseLibrary picks a spreadsheet file
func (sd *SettingsDialog) onBrowseLibrary() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.libraryEntry.SetText(reader.URI().Path())
	}, sd.window)
	picker.SetFilter(storage.NewExtensionFileFilter(library.SupportedExtensions()))
	picker.Show()
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	change := sd.apply()

	msg := sd.localization.GetText(KeySettingsSaved)
	if change.LogLevel {
		msg += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), msg, sd.window)

	if sd.onSaved != nil {
		sd.onSaved(change)
	}
}

// apply writes the form into settings and reports what changed
func (sd *SettingsDialog) apply() SettingsChange {
	var change SettingsChange

	// Validate and save library path
	if path := sd.libraryEntry.Text; path != "" && path != sd.settings.GetLibraryPath() {
		sd.settings.SetLibraryPath(path)
		change.LibraryPath = true
	}

	// Validate and save export directory
	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	// Validate and save recommendation count
	if count, err := strconv.Atoi(sd.recommendEntry.Text); err == nil {
		sd.settings.SetRecommendationCount(count)
	}

	if level := sd.logLevelSelect.Selected; level != "" && level != sd.settings.GetLogLevel() {
		sd.settings.SetLogLevel(level)
		change.LogLevel = true
	}

	// Save language
	if lang := sd.languageSelect.Selected; lang != "" && lang != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(lang)
		change.Language = true
	}

	sd.settings.SetRevealAfterExport(sd.revealCheck.Checked)
	return change
}
