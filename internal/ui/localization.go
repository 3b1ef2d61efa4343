package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle    = "app_title"
	KeyAppSubtitle = "app_subtitle"
	KeyFile        = "file"
	KeyView        = "view"
	KeyLanguage    = "language"
	KeySettings    = "settings"
	KeyOpenLibrary = "open_library"
	KeyReload      = "reload_library"

	KeySearch         = "search"
	KeyAll            = "all"
	KeyColumnTitle    = "column_title"
	KeyColumnGenre    = "column_genre"
	KeyColumnDuration = "column_duration"
	KeyColumnMood     = "column_mood"

	KeyLiveStats     = "live_stats"
	KeyLibrarySongs  = "library_songs"
	KeyPlaylistSongs = "playlist_songs"
	KeyAvgDuration   = "avg_duration"
	KeyMoodDiversity = "mood_diversity"
	KeyLanguages     = "languages"
	KeyPlaylistTotal = "playlist_total"
	KeyPlaylistAvg   = "playlist_avg"
	KeyTopArtist     = "top_artist"
	KeyTopGenre      = "top_genre"

	KeyExportCSV      = "export_csv"
	KeyExportSummary  = "export_summary"
	KeyRecommend      = "recommend"
	KeyWrapped        = "wrapped"
	KeyShowQueue      = "show_queue"
	KeyQueue          = "queue"
	KeyAddToPlaylist  = "add_to_playlist"
	KeyRemoveFromList = "remove_from_playlist"
	KeyAddSelected    = "add_selected"
	KeyRemoveSelected = "remove_selected"
	KeyClearPlaylist  = "clear_playlist"

	KeyReady        = "ready"
	KeyStatusFormat = "status_format"
	KeySampleInUse  = "sample_in_use"
	KeyLibraryReady = "library_ready"

	KeyNoData              = "no_data"
	KeyNoPlaylistToExport  = "no_playlist_to_export"
	KeyExported            = "exported"
	KeySavedAs             = "saved_as"
	KeyNoPlaylist          = "no_playlist"
	KeySelectSongsFirst    = "select_songs_first"
	KeySelectAtLeastOne    = "select_at_least_one"
	KeyRecommendationsTtl  = "recommendations_title"
	KeyRecommendHint       = "recommend_hint"
	KeyNoRecommendations   = "no_recommendations"
	KeyErrorOpeningFile    = "error_opening_file"
	KeyErrorLoadingLibrary = "error_loading_library"

	KeyWrappedTitle  = "wrapped_title"
	KeyWrappedHeader = "wrapped_header"
	KeyWrappedStats  = "wrapped_stats"
	KeyOverview      = "overview"
	KeyTracks        = "tracks"
	KeyChartGenres   = "chart_genres"
	KeyChartArtists  = "chart_artists"
	KeyChartLangs    = "chart_languages"
	KeyChartMoods    = "chart_moods"
	KeyChartLengths  = "chart_lengths"
	KeyNoChartData   = "no_chart_data"

	KeyLibraryFile         = "library_file"
	KeyExportDirectory     = "export_directory"
	KeyRecommendationCount = "recommendation_count"
	KeyLogLevel            = "log_level"
	KeyRevealAfterExport   = "reveal_after_export"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyClose               = "close"
	KeyOpenFile            = "open_file"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyRestartRequired     = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:    "Audion · Ultimate Playlist Analyzer",
		KeyAppSubtitle: "Ultimate Playlist Analyzer",
		KeyFile:        "File",
		KeyView:        "View",
		KeyLanguage:    "Language",
		KeySettings:    "Settings",
		KeyOpenLibrary: "Open Library...",
		KeyReload:      "Reload Library",

		KeySearch:         "Search title or artist",
		KeyAll:            "All",
		KeyColumnTitle:    "Artist/Title",
		KeyColumnGenre:    "Genre",
		KeyColumnDuration: "Duration",
		KeyColumnMood:     "Mood",

		KeyLiveStats:     "Live Stats",
		KeyLibrarySongs:  "Library Songs",
		KeyPlaylistSongs: "Playlist Songs",
		KeyAvgDuration:   "Avg Duration",
		KeyMoodDiversity: "Mood Diversity",
		KeyLanguages:     "Languages",
		KeyPlaylistTotal: "Playlist Total",
		KeyPlaylistAvg:   "Playlist Avg",
		KeyTopArtist:     "Top Artist",
		KeyTopGenre:      "Top Genre",

		KeyExportCSV:      "Export CSV",
		KeyExportSummary:  "Export Summary",
		KeyRecommend:      "Recommend",
		KeyWrapped:        "Wrapped",
		KeyShowQueue:      "Show Queue",
		KeyQueue:          "Queue",
		KeyAddToPlaylist:  "Add to Playlist",
		KeyRemoveFromList: "Remove from Playlist",
		KeyAddSelected:    "Add Selected to Playlist",
		KeyRemoveSelected: "Remove Selected",
		KeyClearPlaylist:  "Clear Playlist",

		KeyReady:        "Ready",
		KeyStatusFormat: "Showing %d songs · %d selected",
		KeySampleInUse:  "Library not found, showing sample songs",
		KeyLibraryReady: "Library loaded",

		KeyNoData:              "No data",
		KeyNoPlaylistToExport:  "No playlist to export.",
		KeyExported:            "Exported",
		KeySavedAs:             "Saved as %s",
		KeyNoPlaylist:          "No playlist",
		KeySelectSongsFirst:    "Select songs first to get recommendations.",
		KeySelectAtLeastOne:    "Select at least one song!",
		KeyRecommendationsTtl:  "Recommendations | Mood Contrast",
		KeyRecommendHint:       "Try adding these to contrast the playlist mood:",
		KeyNoRecommendations:   "No recommendations available.",
		KeyErrorOpeningFile:    "Error opening file",
		KeyErrorLoadingLibrary: "Error loading library",

		KeyWrappedTitle:  "Audion Wrapped · Ultimate Analysis",
		KeyWrappedHeader: "Your Playlist Wrapped",
		KeyWrappedStats:  "%d songs • %s • %s vibes",
		KeyOverview:      "Overview",
		KeyTracks:        "Tracks",
		KeyChartGenres:   "Genres",
		KeyChartArtists:  "Top Artists",
		KeyChartLangs:    "Languages",
		KeyChartMoods:    "Mood Distribution",
		KeyChartLengths:  "Song Lengths (min)",
		KeyNoChartData:   "No data",

		KeyLibraryFile:         "Library Spreadsheet",
		KeyExportDirectory:     "Export Directory",
		KeyRecommendationCount: "Recommendations",
		KeyLogLevel:            "Log Level",
		KeyRevealAfterExport:   "Reveal exported files",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyClose:               "Close",
		KeyOpenFile:            "Open",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyRestartRequired:     "Log level changes apply after restart.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:    "Audion · Анализатор плейлистов",
		KeyAppSubtitle: "Анализатор плейлистов",
		KeyFile:        "Файл",
		KeyView:        "Вид",
		KeyLanguage:    "Язык",
		KeySettings:    "Настройки",
		KeyOpenLibrary: "Открыть библиотеку...",
		KeyReload:      "Перезагрузить библиотеку",

		KeySearch:         "Поиск по названию или исполнителю",
		KeyAll:            "Все",
		KeyColumnTitle:    "Исполнитель/Название",
		KeyColumnGenre:    "Жанр",
		KeyColumnDuration: "Длительность",
		KeyColumnMood:     "Настроение",

		KeyLiveStats:     "Статистика",
		KeyLibrarySongs:  "Песен в библиотеке",
		KeyPlaylistSongs: "Песен в плейлисте",
		KeyAvgDuration:   "Средняя длительность",
		KeyMoodDiversity: "Разнообразие настроений",
		KeyLanguages:     "Языки",
		KeyPlaylistTotal: "Всего в плейлисте",
		KeyPlaylistAvg:   "Среднее в плейлисте",
		KeyTopArtist:     "Топ исполнитель",
		KeyTopGenre:      "Топ жанр",

		KeyExportCSV:      "Экспорт CSV",
		KeyExportSummary:  "Экспорт сводки",
		KeyRecommend:      "Рекомендации",
		KeyWrapped:        "Итоги",
		KeyShowQueue:      "Показать очередь",
		KeyQueue:          "Очередь",
		KeyAddToPlaylist:  "Добавить в плейлист",
		KeyRemoveFromList: "Удалить из плейлиста",
		KeyAddSelected:    "Добавить выбранное",
		KeyRemoveSelected: "Удалить выбранное",
		KeyClearPlaylist:  "Очистить плейлист",

		KeyReady:        "Готово",
		KeyStatusFormat: "Показано %d песен · %d выбрано",
		KeySampleInUse:  "Библиотека не найдена, показаны примеры",
		KeyLibraryReady: "Библиотека загружена",

		KeyNoData:              "Нет данных",
		KeyNoPlaylistToExport:  "Нет плейлиста для экспорта.",
		KeyExported:            "Экспортировано",
		KeySavedAs:             "Сохранено как %s",
		KeyNoPlaylist:          "Нет плейлиста",
		KeySelectSongsFirst:    "Сначала выберите песни, чтобы получить рекомендации.",
		KeySelectAtLeastOne:    "Выберите хотя бы одну песню!",
		KeyRecommendationsTtl:  "Рекомендации | Контраст настроения",
		KeyRecommendHint:       "Добавьте эти песни, чтобы разнообразить настроение:",
		KeyNoRecommendations:   "Рекомендаций нет.",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
		KeyErrorLoadingLibrary: "Ошибка загрузки библиотеки",

		KeyWrappedTitle:  "Audion Итоги · Полный анализ",
		KeyWrappedHeader: "Итоги вашего плейлиста",
		KeyWrappedStats:  "%d песен • %s • настроение %s",
		KeyOverview:      "Обзор",
		KeyTracks:        "Треки",
		KeyChartGenres:   "Жанры",
		KeyChartArtists:  "Топ исполнителей",
		KeyChartLangs:    "Языки",
		KeyChartMoods:    "Настроения",
		KeyChartLengths:  "Длительность песен (мин)",
		KeyNoChartData:   "Нет данных",

		KeyLibraryFile:         "Файл библиотеки",
		KeyExportDirectory:     "Папка экспорта",
		KeyRecommendationCount: "Рекомендаций",
		KeyLogLevel:            "Уровень логов",
		KeyRevealAfterExport:   "Показывать экспортированные файлы",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyClose:               "Закрыть",
		KeyOpenFile:            "Открыть",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyRestartRequired:     "Уровень логов применится после перезапуска.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:    "Audion · Analisador de Playlists",
		KeyAppSubtitle: "Analisador de Playlists",
		KeyFile:        "Arquivo",
		KeyView:        "Exibir",
		KeyLanguage:    "Idioma",
		KeySettings:    "Configurações",
		KeyOpenLibrary: "Abrir Biblioteca...",
		KeyReload:      "Recarregar Biblioteca",

		KeySearch:         "Buscar título ou artista",
		KeyAll:            "Todos",
		KeyColumnTitle:    "Artista/Título",
		KeyColumnGenre:    "Gênero",
		KeyColumnDuration: "Duração",
		KeyColumnMood:     "Humor",

		KeyLiveStats:     "Estatísticas",
		KeyLibrarySongs:  "Músicas na Biblioteca",
		KeyPlaylistSongs: "Músicas na Playlist",
		KeyAvgDuration:   "Duração Média",
		KeyMoodDiversity: "Diversidade de Humor",
		KeyLanguages:     "Idiomas",
		KeyPlaylistTotal: "Total da Playlist",
		KeyPlaylistAvg:   "Média da Playlist",
		KeyTopArtist:     "Artista Principal",
		KeyTopGenre:      "Gênero Principal",

		KeyExportCSV:      "Exportar CSV",
		KeyExportSummary:  "Exportar Resumo",
		KeyRecommend:      "Recomendar",
		KeyWrapped:        "Retrospectiva",
		KeyShowQueue:      "Mostrar Fila",
		KeyQueue:          "Fila",
		KeyAddToPlaylist:  "Adicionar à Playlist",
		KeyRemoveFromList: "Remover da Playlist",
		KeyAddSelected:    "Adicionar Selecionada",
		KeyRemoveSelected: "Remover Selecionada",
		KeyClearPlaylist:  "Limpar Playlist",

		KeyReady:        "Pronto",
		KeyStatusFormat: "Mostrando %d músicas · %d selecionadas",
		KeySampleInUse:  "Biblioteca não encontrada, mostrando exemplos",
		KeyLibraryReady: "Biblioteca carregada",

		KeyNoData:              "Sem dados",
		KeyNoPlaylistToExport:  "Nenhuma playlist para exportar.",
		KeyExported:            "Exportado",
		KeySavedAs:             "Salvo como %s",
		KeyNoPlaylist:          "Sem playlist",
		KeySelectSongsFirst:    "Selecione músicas primeiro para receber recomendações.",
		KeySelectAtLeastOne:    "Selecione pelo menos uma música!",
		KeyRecommendationsTtl:  "Recomendações | Contraste de Humor",
		KeyRecommendHint:       "Experimente adicionar estas para variar o humor:",
		KeyNoRecommendations:   "Nenhuma recomendação disponível.",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
		KeyErrorLoadingLibrary: "Erro ao carregar biblioteca",

		KeyWrappedTitle:  "Audion Retrospectiva · Análise Completa",
		KeyWrappedHeader: "Sua Playlist em Retrospectiva",
		KeyWrappedStats:  "%d músicas • %s • clima %s",
		KeyOverview:      "Visão Geral",
		KeyTracks:        "Faixas",
		KeyChartGenres:   "Gêneros",
		KeyChartArtists:  "Principais Artistas",
		KeyChartLangs:    "Idiomas",
		KeyChartMoods:    "Distribuição de Humor",
		KeyChartLengths:  "Duração das Músicas (min)",
		KeyNoChartData:   "Sem dados",

		KeyLibraryFile:         "Planilha da Biblioteca",
		KeyExportDirectory:     "Diretório de Exportação",
		KeyRecommendationCount: "Recomendações",
		KeyLogLevel:            "Nível de Log",
		KeyRevealAfterExport:   "Mostrar arquivos exportados",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyClose:               "Fechar",
		KeyOpenFile:            "Abrir",
		KeyBrowse:              "Navegar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyRestartRequired:     "O nível de log será aplicado após reiniciar.",
	}
}
