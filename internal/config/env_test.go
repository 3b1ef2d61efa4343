package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/audion/internal/library"
	"github.com/ytget/audion/internal/logger"
)

// unsetEnv removes keys for the duration of the test; t.Setenv restores them
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadEnv_DotenvFile(t *testing.T) {
	unsetEnv(t, EnvLibrary, EnvExportDir, EnvLogLevel, EnvLogFile)

	path := filepath.Join(t.TempDir(), ".env")
	content := "AUDION_LIBRARY=/music/audion.xlsx\nAUDION_LOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	env := LoadEnv(path)

	if !env.DotenvLoaded {
		t.Error("Expected .env file to be loaded")
	}
	if env.LibraryPath != "/music/audion.xlsx" {
		t.Errorf("Expected library from .env, got %q", env.LibraryPath)
	}
	if env.LogLevel != "debug" {
		t.Errorf("Expected log level from .env, got %q", env.LogLevel)
	}
	if env.ExportDir != "" {
		t.Errorf("Expected empty export dir, got %q", env.ExportDir)
	}
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	unsetEnv(t, EnvLibrary, EnvExportDir, EnvLogLevel, EnvLogFile)
	t.Setenv(EnvExportDir, " /from/process ")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("AUDION_EXPORT_DIR=/from/file\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	env := LoadEnv(path)
	if env.ExportDir != "/from/process" {
		t.Errorf("Expected process env to win, got %q", env.ExportDir)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	unsetEnv(t, EnvLibrary, EnvExportDir, EnvLogLevel, EnvLogFile)

	env := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if env.DotenvLoaded {
		t.Error("Missing .env file should not report as loaded")
	}
	if env != (Env{}) {
		t.Errorf("Expected empty env, got %+v", env)
	}
}

func TestEnv_LoggerConfig(t *testing.T) {
	cfg := Env{}.LoggerConfig()
	if cfg.Level != logger.InfoLevel || cfg.OutputPath != "" {
		t.Errorf("Unexpected default logger config %+v", cfg)
	}

	cfg = Env{LogLevel: "error", LogFile: "logs/audion.log"}.LoggerConfig()
	if cfg.Level != logger.ErrorLevel || cfg.OutputPath != "logs/audion.log" {
		t.Errorf("Unexpected logger config %+v", cfg)
	}
}

func TestResolveLibraryPath(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		expected   string
	}{
		{"none", nil, library.DefaultLibraryFile},
		{"blank", []string{"", "  "}, library.DefaultLibraryFile},
		{"first wins", []string{"a.xlsx", "b.xlsx"}, "a.xlsx"},
		{"skips blank", []string{"", "b.csv"}, "b.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLibraryPath(tt.candidates...); got != tt.expected {
				t.Errorf("ResolveLibraryPath(%v) = %q, expected %q", tt.candidates, got, tt.expected)
			}
		})
	}
}

func TestResolveExportDir(t *testing.T) {
	if got := ResolveExportDir("", " out "); got != "out" {
		t.Errorf("ResolveExportDir = %q, expected %q", got, "out")
	}
	if got := ResolveExportDir(); got != DefaultExportDir() {
		t.Errorf("ResolveExportDir() = %q, expected DefaultExportDir %q", got, DefaultExportDir())
	}
}
