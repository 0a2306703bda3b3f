package ui

import (
	"testing"
)

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyRefresh); got != "Refresh" {
		t.Errorf("Expected Refresh, got %s", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyRefresh); got != "Обновить" {
		t.Errorf("Expected Обновить, got %s", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay ru, got %s", l.GetCurrentLanguage())
	}

	// "system" falls back to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationUnknownKeyFallsBack(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself as fallback, got %s", got)
	}
}

func TestLocalizationAllLanguagesCoverAllKeys(t *testing.T) {
	l := NewLocalization()

	keys := []string{
		KeyAppTitle, KeyIndicatorsTitle, KeyTopicTitle, KeyRefresh,
		KeyRefreshing, KeyLastRefresh, KeyRefreshFailed, KeyExport,
		KeyExportCompleted, KeyExportFailed, KeyNoSnapshot, KeySettings,
		KeyFile, KeyLanguage, KeyDetails, KeyClose, KeyAPIKey,
		KeyAPIKeyMissing, KeyAutoRefresh, KeyRefreshInterval, KeyMaxParallel,
		KeyExportDirectory, KeySave, KeyCancel, KeyBrowse, KeySettingsSaved,
		KeyErrorOpeningFile, KeySummaryWindow, KeySummaryLoading,
		KeySummaryFailed,
	}

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Language %s has no texts", lang)
			continue
		}
		for _, key := range keys {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s missing key %s", lang, key)
			}
		}
	}
}
