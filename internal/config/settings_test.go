package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIKeyPrecedence(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	t.Setenv(EnvAPIKey, "env-key")

	// No preference override: environment wins
	if key := settings.GetAPIKey(); key != "env-key" {
		t.Errorf("Expected env key, got %q", key)
	}

	// Preference override wins over environment
	settings.SetAPIKey("pref-key")
	if key := settings.GetAPIKey(); key != "pref-key" {
		t.Errorf("Expected preference key, got %q", key)
	}

	// Clearing the preference falls back to environment
	settings.SetAPIKey("")
	if key := settings.GetAPIKey(); key != "env-key" {
		t.Errorf("Expected env key after clearing preference, got %q", key)
	}
}

func TestAutoRefresh(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoRefresh() {
		t.Error("Auto refresh should default to true")
	}

	settings.SetAutoRefresh(false)
	if settings.GetAutoRefresh() {
		t.Error("Auto refresh should be false after disabling")
	}
}

func TestRefreshIntervalMinutes(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if interval := settings.GetRefreshIntervalMinutes(); interval != DefaultRefreshInterval {
		t.Errorf("Expected default interval %d, got %d", DefaultRefreshInterval, interval)
	}

	// Test setting custom value
	settings.SetRefreshIntervalMinutes(15)
	if interval := settings.GetRefreshIntervalMinutes(); interval != 15 {
		t.Errorf("Expected interval 15, got %d", interval)
	}

	// Test boundary values
	settings.SetRefreshIntervalMinutes(0) // Should be clamped to minimum
	if settings.GetRefreshIntervalMinutes() != MinRefreshInterval {
		t.Errorf("Interval should be clamped to minimum %d", MinRefreshInterval)
	}

	settings.SetRefreshIntervalMinutes(500) // Should be clamped to maximum
	if settings.GetRefreshIntervalMinutes() != MaxRefreshInterval {
		t.Errorf("Interval should be clamped to maximum %d", MaxRefreshInterval)
	}
}

func TestMaxParallelFetches(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if maxParallel := settings.GetMaxParallelFetches(); maxParallel != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, maxParallel)
	}

	// Test setting custom value
	settings.SetMaxParallelFetches(2)
	if maxParallel := settings.GetMaxParallelFetches(); maxParallel != 2 {
		t.Errorf("Expected max parallel 2, got %d", maxParallel)
	}

	// Test boundary values
	settings.SetMaxParallelFetches(0)
	if settings.GetMaxParallelFetches() != MinMaxParallel {
		t.Errorf("Max parallel should be clamped to minimum %d", MinMaxParallel)
	}

	settings.SetMaxParallelFetches(50)
	if settings.GetMaxParallelFetches() != MaxMaxParallel {
		t.Errorf("Max parallel should be clamped to maximum %d", MaxMaxParallel)
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetExportDirectory(); dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)
	if dir := settings.GetExportDirectory(); dir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
