package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{" warn ", WarnLevel},
		{"error", ErrorLevel},
		{"info", InfoLevel},
		{"", InfoLevel},
		{"verbose", InfoLevel},
	}

	for _, test := range tests {
		result := ParseLevel(test.input)
		if result != test.expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestHelpersBeforeInitAreNoops(t *testing.T) {
	// Must not panic when no logger has been installed.
	Debug("debug")
	Info("info", String("k", "v"))
	Warn("warn", Int("n", 1))
	Error("error", ErrorField(errors.New("boom")))
	Sync()
}

func TestInitLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "audion.log")

	cfg := DefaultConfig()
	cfg.Console = false
	cfg.OutputPath = path
	if err := InitLogger(cfg); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	Info("library loaded", Int("songs", 5), Bool("sample", true),
		Float64("avg_min", 3.5), Duration("elapsed", 2*time.Second))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to exist: %v", err)
	}
	for _, want := range []string{`"songs":5`, `"avg_min":3.5`, `"elapsed":"2s"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected log entry to contain %s, got %s", want, data)
		}
	}
}
