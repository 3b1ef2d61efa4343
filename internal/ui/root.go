package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/audion/internal/config"
	"github.com/ytget/audion/internal/export"
	"github.com/ytget/audion/internal/library"
	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/model"
	"github.com/ytget/audion/internal/platform"
	"github.com/ytget/audion/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      session.Browser
	loader       *library.Loader
	settings     *config.Settings
	localization *Localization

	// Header
	titleLabel    *widget.Label
	subtitleLabel *canvas.Text

	// Library browser
	searchEntry    *widget.Entry
	languageSelect *widget.Select
	genreSelect    *widget.Select
	songHeader     *fyne.Container
	songList       *widget.List
	visible        []*model.Song
	selectedID     string

	addSelectedBtn    *widget.Button
	removeSelectedBtn *widget.Button

	// Sidebar
	statsPanel       *StatsPanel
	queuePanel       *QueuePanel
	queueToggle      *widget.Check
	exportCSVBtn     *widget.Button
	exportSummaryBtn *widget.Button
	recommendBtn     *widget.Button
	wrappedBtn       *widget.Button

	// Status bar and notification panel
	statusLabel           *widget.Label
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc session.Browser, settings *config.Settings, loader *library.Loader) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      svc,
		loader:       loader,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(IconApp + " " + localization.GetText(KeyAppTitle))

	// Set up callback for session updates
	ui.session.SetUpdateCallback(ui.onSnapshot)

	ui.setupUI()
	ui.onSnapshot(ui.session.Snapshot())

	logger.Debug("root UI initialized", logger.Int("songs", ui.session.Library().Len()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Header with optional logo
	ui.titleLabel = widget.NewLabelWithStyle(IconApp+" Audion", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.subtitleLabel = canvas.NewText(ui.localization.GetText(KeyAppSubtitle), ColorMuted)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	brand := container.NewHBox(ui.titleLabel, container.NewCenter(ui.subtitleLabel))
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		brand = container.NewHBox(logoImage, ui.titleLabel, container.NewCenter(ui.subtitleLabel))
	}
	header := container.NewStack(canvas.NewRectangle(ColorPanel),
		container.NewPadded(container.NewBorder(nil, nil, brand, settingsBtn)))

	// Search bar
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearch))
	ui.searchEntry.OnChanged = func(string) { ui.applyFilters() }

	ui.genreSelect = widget.NewSelect(nil, func(string) { ui.applyFilters() })
	ui.languageSelect = widget.NewSelect(nil, func(string) { ui.applyFilters() })
	ui.refreshFilterOptions()

	searchBar := container.NewBorder(nil, nil, nil,
		container.NewHBox(fixedWidth(GenreLabelWidth, ui.genreSelect), fixedWidth(GenreLabelWidth, ui.languageSelect)),
		ui.searchEntry)

	// Notification panel under the search bar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationContainer = container.NewHBox(container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Song table
	ui.songHeader = container.NewStack(NewSongHeader(ui.localization))
	ui.songList = widget.NewList(
		func() int {
			return len(ui.visible)
		},
		func() fyne.CanvasObject { return ui.createSongItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateSongItem(id, obj) },
	)
	ui.songList.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(ui.visible) {
			ui.selectedID = ui.visible[id].ID
		}
	}
	ui.songList.OnUnselected = func(widget.ListItemID) { ui.selectedID = "" }

	ui.addSelectedBtn = widget.NewButton(IconAdd+" "+ui.localization.GetText(KeyAddSelected), ui.onAddSelected)
	ui.removeSelectedBtn = widget.NewButton(IconRemove+" "+ui.localization.GetText(KeyRemoveSelected), ui.onRemoveSelected)
	actionRow := container.NewHBox(ui.addSelectedBtn, ui.removeSelectedBtn)

	browser := container.NewBorder(
		container.NewVBox(searchBar, ui.notificationContainer, ui.songHeader),
		actionRow,
		nil,
		nil,
		ui.songList,
	)

	// Sidebar: stats, controls, queue
	ui.statsPanel = NewStatsPanel(ui.localization)
	ui.queuePanel = NewQueuePanel(ui.localization)
	ui.queuePanel.SetOnRemove(ui.removeSong)

	ui.exportCSVBtn = widget.NewButton(IconExport+" "+ui.localization.GetText(KeyExportCSV), ui.onExportCSV)
	ui.exportSummaryBtn = widget.NewButton(IconSummary+" "+ui.localization.GetText(KeyExportSummary), ui.onExportSummary)
	ui.recommendBtn = widget.NewButton(IconRecommend+" "+ui.localization.GetText(KeyRecommend), ui.onRecommend)
	ui.wrappedBtn = widget.NewButton(IconWrapped+" "+ui.localization.GetText(KeyWrapped), ui.onWrapped)
	ui.wrappedBtn.Importance = widget.HighImportance

	ui.queueToggle = widget.NewCheck(ui.localization.GetText(KeyShowQueue), func(show bool) {
		if show {
			ui.queuePanel.Container().Show()
		} else {
			ui.queuePanel.Container().Hide()
		}
	})
	ui.queueToggle.SetChecked(true)

	controls := container.NewVBox(
		container.NewGridWithColumns(2, ui.exportCSVBtn, ui.exportSummaryBtn, ui.recommendBtn, ui.wrappedBtn),
		ui.queueToggle,
	)
	sidebar := container.NewBorder(
		container.NewVBox(ui.statsPanel.Container(), controls),
		nil, nil, nil,
		ui.queuePanel.Container(),
	)

	split := container.NewHSplit(browser, sidebar)
	split.Offset = SidebarOffset

	// Status bar
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyReady))
	statusBar := container.NewStack(canvas.NewRectangle(ColorPanel), ui.statusLabel)

	ui.window.SetContent(container.NewBorder(header, statusBar, nil, nil, split))
	ui.window.Resize(fyne.NewSize(MainWindowWidth, MainWindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeyOpenLibrary), ui.onOpenLibrary),
		fyne.NewMenuItem(l.GetText(KeyReload), ui.reloadLibrary),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeyExportCSV), ui.onExportCSV),
		fyne.NewMenuItem(l.GetText(KeyExportSummary), ui.onExportSummary),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings),
	)

	viewMenu := fyne.NewMenu(l.GetText(KeyView),
		fyne.NewMenuItem(l.GetText(KeyRecommend), ui.onRecommend),
		fyne.NewMenuItem(l.GetText(KeyWrapped), ui.onWrapped),
		fyne.NewMenuItem(l.GetText(KeyClearPlaylist), ui.session.ClearPlaylist),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if l.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(IconApp + " " + l.GetText(KeyAppTitle))
	ui.subtitleLabel.Text = l.GetText(KeyAppSubtitle)
	ui.subtitleLabel.Refresh()

	ui.searchEntry.SetPlaceHolder(l.GetText(KeySearch))
	ui.addSelectedBtn.SetText(IconAdd + " " + l.GetText(KeyAddSelected))
	ui.removeSelectedBtn.SetText(IconRemove + " " + l.GetText(KeyRemoveSelected))
	ui.exportCSVBtn.SetText(IconExport + " " + l.GetText(KeyExportCSV))
	ui.exportSummaryBtn.SetText(IconSummary + " " + l.GetText(KeyExportSummary))
	ui.recommendBtn.SetText(IconRecommend + " " + l.GetText(KeyRecommend))
	ui.wrappedBtn.SetText(IconWrapped + " " + l.GetText(KeyWrapped))
	ui.queueToggle.Text = l.GetText(KeyShowQueue)
	ui.queueToggle.Refresh()

	ui.songHeader.Objects = []fyne.CanvasObject{NewSongHeader(l)}
	ui.songHeader.Refresh()

	ui.statsPanel.RefreshTexts()
	ui.queuePanel.RefreshTexts()
	ui.refreshFilterOptions()
	ui.updateStatusBar(ui.session.Snapshot())
	ui.songList.Refresh()
}

// refreshFilterOptions rebuilds the language and genre choices from the library.
// Blank values cannot be selected since an empty filter field matches everything.
func (ui *RootUI) refreshFilterOptions() {
	all := ui.localization.GetText(KeyAll)
	lib := ui.session.Library()
	current := ui.session.Filter()

	setOptions := func(sel *widget.Select, values []string, selected string) {
		options := []string{all}
		for _, v := range values {
			if strings.TrimSpace(v) != "" {
				options = append(options, v)
			}
		}
		changed := sel.OnChanged
		sel.OnChanged = nil
		sel.Options = options
		if !slices.Contains(options, selected) {
			selected = all
		}
		sel.SetSelected(selected)
		sel.OnChanged = changed
		sel.Refresh()
	}

	setOptions(ui.languageSelect, lib.Languages(), current.Language)
	setOptions(ui.genreSelect, lib.Genres(), current.Genre)
}

// filterValue maps the localized "All" choice back to an empty filter field
func (ui *RootUI) filterValue(selected string) string {
	if selected == ui.localization.GetText(KeyAll) {
		return ""
	}
	return selected
}

// applyFilters pushes the search bar state into the session. The list
// selection is dropped because row indices change meaning.
func (ui *RootUI) applyFilters() {
	if ui.searchEntry == nil || ui.languageSelect == nil || ui.genreSelect == nil {
		return
	}
	ui.clearSelection()
	ui.session.ApplyFilter(library.Filter{
		Language: ui.filterValue(ui.languageSelect.Selected),
		Genre:    ui.filterValue(ui.genreSelect.Selected),
		Query:    strings.TrimSpace(ui.searchEntry.Text),
	})
}

// createSongItem creates a new song row template
func (ui *RootUI) createSongItem() fyne.CanvasObject {
	row := NewSongRow(ui.localization)
	row.SetCallbacks(ui.addSong, ui.removeSong)
	return row
}

// updateSongItem binds a template row to the visible song at id
func (ui *RootUI) updateSongItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.visible) {
		return
	}
	song := ui.visible[id]
	item.(*SongRow).SetSong(song, ui.session.Playlist().Contains(song.ID))
}

// onSnapshot refreshes every view that depends on session state
func (ui *RootUI) onSnapshot(snap session.Snapshot) {
	if ui.songList == nil {
		return
	}
	ui.visible = ui.session.Visible()
	ui.songList.Refresh()
	ui.statsPanel.Update(snap)
	ui.queuePanel.SetSongs(ui.session.Queue())
	ui.updateStatusBar(snap)
}

// updateStatusBar renders "Showing n songs · m selected"
func (ui *RootUI) updateStatusBar(snap session.Snapshot) {
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyStatusFormat), snap.Visible, snap.PlaylistCount))
}

// showNotification displays a message in the panel under the search bar
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer != nil {
		ui.notificationContainer.Hide()
	}
}

// addSong adds a library song to the playlist
func (ui *RootUI) addSong(songID string) {
	if err := ui.session.AddToPlaylist(songID); err != nil {
		logger.Warn("add to playlist failed", logger.String("id", songID), logger.ErrorField(err))
	}
}

// removeSong removes a song from the playlist
func (ui *RootUI) removeSong(songID string) {
	if err := ui.session.RemoveFromPlaylist(songID); err != nil {
		logger.Debug("remove from playlist ignored", logger.String("id", songID), logger.ErrorField(err))
	}
}

// clearSelection forgets the highlighted row
func (ui *RootUI) clearSelection() {
	ui.selectedID = ""
	if ui.songList != nil {
		ui.songList.UnselectAll()
	}
}

// onAddSelected adds the highlighted table row
func (ui *RootUI) onAddSelected() {
	if ui.selectedID != "" {
		ui.addSong(ui.selectedID)
	}
}

// onRemoveSelected removes the highlighted table row
func (ui *RootUI) onRemoveSelected() {
	if ui.selectedID != "" {
		ui.removeSong(ui.selectedID)
	}
}

// onExportCSV writes the playlist CSV into the export directory
func (ui *RootUI) onExportCSV() {
	ui.handleExport(ui.session.ExportCSV(ui.settings.GetExportDirectory()))
}

// onExportSummary writes the playlist summary into the export directory
func (ui *RootUI) onExportSummary() {
	ui.handleExport(ui.session.ExportSummary(ui.settings.GetExportDirectory()))
}

// handleExport reports an export result. An empty playlist is a warning, not a failure.
func (ui *RootUI) handleExport(path string, err error) {
	l := ui.localization
	switch {
	case errors.Is(err, export.ErrEmptyPlaylist):
		dialog.ShowInformation(l.GetText(KeyNoData), l.GetText(KeyNoPlaylistToExport), ui.window)
		return
	case err != nil:
		logger.Error("export failed", logger.ErrorField(err))
		dialog.ShowError(err, ui.window)
		return
	}

	message := fmt.Sprintf(l.GetText(KeySavedAs), path)
	done := dialog.NewConfirm(l.GetText(KeyExported), message, func(open bool) {
		if open {
			ui.onOpenFile(path)
		}
	}, ui.window)
	done.SetConfirmText(l.GetText(KeyOpenFile))
	done.SetDismissText(l.GetText(KeyClose))
	done.Show()
	ui.app.SendNotification(fyne.NewNotification(l.GetText(KeyExported), message))

	if ui.settings.GetRevealAfterExport() {
		ui.onRevealFile(path)
	}
}

// onRevealFile shows an exported file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		logger.Warn("failed to reveal file", logger.String("path", filePath), logger.ErrorField(err))
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onOpenFile opens an exported file with its default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		logger.Warn("failed to open file", logger.String("path", filePath), logger.ErrorField(err))
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onRecommend shows mood-contrasting suggestions for the playlist
func (ui *RootUI) onRecommend() {
	l := ui.localization
	if ui.session.Summary().IsEmpty() {
		dialog.ShowInformation(l.GetText(KeyNoPlaylist), l.GetText(KeySelectSongsFirst), ui.window)
		return
	}

	recs := ui.session.Recommendations(ui.settings.GetRecommendationCount())
	if len(recs) == 0 {
		dialog.ShowInformation(l.GetText(KeyRecommendationsTtl), l.GetText(KeyNoRecommendations), ui.window)
		return
	}
	NewRecommendDialog(recs, l, ui.window, ui.addSong).Show()
}

// onWrapped opens the dashboard window
func (ui *RootUI) onWrapped() {
	l := ui.localization
	if ui.session.Summary().IsEmpty() {
		dialog.ShowInformation(l.GetText(KeyNoPlaylist), l.GetText(KeySelectAtLeastOne), ui.window)
		return
	}
	ShowDashboard(ui.app, ui.session.Queue(), l)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies settings that take effect immediately
func (ui *RootUI) onSettingsSaved(change SettingsChange) {
	if change.Language {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}
	if change.LibraryPath {
		ui.reloadLibrary()
	}
}

// onOpenLibrary picks a spreadsheet and loads it
func (ui *RootUI) onOpenLibrary() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.settings.SetLibraryPath(path)
		ui.reloadLibrary()
	}, ui.window)
	picker.SetFilter(storage.NewExtensionFileFilter(library.SupportedExtensions()))
	picker.Show()
}

// reloadLibrary loads the configured spreadsheet, falling back to the sample
func (ui *RootUI) reloadLibrary() {
	lib, usedSample, err := ui.loader.LoadOrSample(ui.settings.GetLibraryPath())
	ui.LoadLibrary(lib, usedSample, err)
}

// LoadLibrary installs lib into the session and refreshes the filters.
// usedSample and err describe how lib was obtained.
func (ui *RootUI) LoadLibrary(lib *library.Library, usedSample bool, err error) {
	ui.clearSelection()
	ui.session.SetLibrary(lib)
	ui.refreshFilterOptions()
	ui.applyFilters()

	if usedSample {
		msg := ui.localization.GetText(KeySampleInUse)
		if err != nil {
			msg += ": " + err.Error()
		}
		ui.showNotification(msg)
		return
	}
	ui.hideNotification()
}
