package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/stats"
)

// Settings keys for Fyne preferences
const (
	KeyLibraryPath     = "library_path"
	KeyExportDir       = "export_directory"
	KeyLanguage        = "app_language"
	KeyRecommendations = "recommendation_count"
	KeyLogLevel        = "log_level"
	KeyRevealExports   = "reveal_after_export"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultRecommendations = stats.DefaultRecommendations
	DefaultLogLevel        = string(logger.InfoLevel)
	DefaultRevealExports   = true

	MinRecommendations = 1
	MaxRecommendations = 20
)

// Settings manages application configuration. Environment overrides, when
// present, take precedence over stored preferences without being persisted.
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// WithEnv attaches environment overrides
func (s *Settings) WithEnv(env Env) *Settings {
	s.env = env
	return s
}

// GetLibraryPath returns the spreadsheet to load
func (s *Settings) GetLibraryPath() string {
	return ResolveLibraryPath(s.env.LibraryPath, s.app.Preferences().String(KeyLibraryPath))
}

// SetLibraryPath stores the spreadsheet path. A path other than the
// environment override replaces that override for the rest of the run.
func (s *Settings) SetLibraryPath(path string) {
	if s.env.LibraryPath != "" {
		if path == s.env.LibraryPath {
			return
		}
		s.env.LibraryPath = ""
	}
	s.app.Preferences().SetString(KeyLibraryPath, path)
}

// GetExportDirectory returns the directory exports are written to
func (s *Settings) GetExportDirectory() string {
	if s.env.ExportDir != "" {
		return s.env.ExportDir
	}
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		dir = DefaultExportDir()
		s.SetExportDirectory(dir)
	}
	return dir
}

// SetExportDirectory sets the export directory, replacing a differing
// environment override like SetLibraryPath
func (s *Settings) SetExportDirectory(dir string) {
	if s.env.ExportDir != "" {
		if dir == s.env.ExportDir {
			return
		}
		s.env.ExportDir = ""
	}
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetRecommendationCount returns how many songs the recommender suggests
func (s *Settings) GetRecommendationCount() int {
	value := s.app.Preferences().Int(KeyRecommendations)
	if value <= 0 {
		s.SetRecommendationCount(DefaultRecommendations)
		return DefaultRecommendations
	}
	return value
}

// SetRecommendationCount sets the recommendation count, clamped to a sane range
func (s *Settings) SetRecommendationCount(count int) {
	if count < MinRecommendations {
		count = MinRecommendations
	}
	if count > MaxRecommendations {
		count = MaxRecommendations
	}
	s.app.Preferences().SetInt(KeyRecommendations, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevel returns the log level
func (s *Settings) GetLogLevel() string {
	if s.env.LogLevel != "" {
		return string(logger.ParseLevel(s.env.LogLevel))
	}
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel stores the log level, normalizing unknown names to info
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, string(logger.ParseLevel(level)))
}

// GetLogLevelOptions returns the selectable log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{
		string(logger.DebugLevel),
		string(logger.InfoLevel),
		string(logger.WarnLevel),
		string(logger.ErrorLevel),
	}
}

// GetRevealAfterExport returns whether exported files are shown in the file manager
func (s *Settings) GetRevealAfterExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealExports, DefaultRevealExports)
}

// SetRevealAfterExport sets whether exported files are shown in the file manager
func (s *Settings) SetRevealAfterExport(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealExports, reveal)
}

// LoggerConfig combines the stored log level with the environment's log file
func (s *Settings) LoggerConfig() logger.Config {
	cfg := s.env.LoggerConfig()
	cfg.Level = logger.ParseLevel(s.GetLogLevel())
	return cfg
}
