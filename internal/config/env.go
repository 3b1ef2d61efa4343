package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ytget/audion/internal/library"
	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/platform"
)

// Environment variables read at startup
const (
	EnvLibrary   = "AUDION_LIBRARY"
	EnvExportDir = "AUDION_EXPORT_DIR"
	EnvLogLevel  = "AUDION_LOG_LEVEL"
	EnvLogFile   = "AUDION_LOG_FILE"
)

// Env holds overrides from the process environment and optional .env files
type Env struct {
	LibraryPath string
	ExportDir   string
	LogLevel    string
	LogFile     string

	// DotenvLoaded reports whether a .env file was read
	DotenvLoaded bool
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// LoadEnv reads the given .env files (".env" when none are given) and then the
// process environment. Variables already set in the environment win over the files.
func LoadEnv(files ...string) Env {
	err := godotenv.Load(files...)

	return Env{
		LibraryPath:  getEnv(EnvLibrary, ""),
		ExportDir:    getEnv(EnvExportDir, ""),
		LogLevel:     getEnv(EnvLogLevel, ""),
		LogFile:      getEnv(EnvLogFile, ""),
		DotenvLoaded: err == nil,
	}
}

// LoggerConfig derives the logger setup from the environment
func (e Env) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	if e.LogLevel != "" {
		cfg.Level = logger.ParseLevel(e.LogLevel)
	}
	cfg.OutputPath = e.LogFile
	return cfg
}

// ResolveLibraryPath returns the first non-empty candidate, or the default
// spreadsheet name in the working directory
func ResolveLibraryPath(candidates ...string) string {
	if path, ok := firstNonBlank(candidates); ok {
		return path
	}
	return library.DefaultLibraryFile
}

// ResolveExportDir returns the first non-empty candidate, or DefaultExportDir
func ResolveExportDir(candidates ...string) string {
	if dir, ok := firstNonBlank(candidates); ok {
		return dir
	}
	return DefaultExportDir()
}

func firstNonBlank(values []string) (string, bool) {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// DefaultExportDir is the user's Downloads folder, or the working directory
// when the home directory is unknown
func DefaultExportDir() string {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return "."
	}
	return dir
}
