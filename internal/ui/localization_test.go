package ui

import "testing"

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	english := l.texts["en"]
	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("Missing texts for language %s", lang)
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
		if len(texts) != len(english) {
			t.Errorf("Language %s has %d keys, English has %d", lang, len(texts), len(english))
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"system", "en"},
		{"xx", "en"}, // unknown keeps the previous language
		{"pt", "pt"},
	}

	for _, tt := range tests {
		l.SetLanguage(tt.lang)
		if got := l.GetCurrentLanguage(); got != tt.expected {
			t.Errorf("SetLanguage(%q): expected %s, got %s", tt.lang, tt.expected, got)
		}
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText(KeyExportCSV); got != "Exportar CSV" {
		t.Errorf("Expected Portuguese text, got %s", got)
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}
