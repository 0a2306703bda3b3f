package config

import (
	"os"

	"fyne.io/fyne/v2"

	"github.com/macroview/macro-dashboard/internal/platform"
)

// EnvAPIKey is the environment variable holding the FRED API key. A key set
// in preferences takes precedence; godotenv in main populates the variable
// from a .env file when present.
const EnvAPIKey = "FRED_API_KEY"

// Settings keys for Fyne preferences
const (
	KeyAPIKey          = "fred_api_key"
	KeyAutoRefresh     = "auto_refresh_on_launch"
	KeyRefreshInterval = "refresh_interval_minutes"
	KeyMaxParallel     = "max_parallel_fetches"
	KeyExportDir       = "export_directory"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultAutoRefresh     = true
	DefaultRefreshInterval = 30
	MinRefreshInterval     = 1
	MaxRefreshInterval     = 120
	DefaultMaxParallel     = 4
	MinMaxParallel         = 1
	MaxMaxParallel         = 8
	DefaultLanguage        = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIKey returns the FRED API key: the preference override when set,
// otherwise the environment
func (s *Settings) GetAPIKey() string {
	key := s.app.Preferences().String(KeyAPIKey)
	if key != "" {
		return key
	}
	return os.Getenv(EnvAPIKey)
}

// GetAPIKeyOverride returns only the preference override, without falling
// back to the environment. Used by the settings dialog so the env key is
// never copied into preferences.
func (s *Settings) GetAPIKeyOverride() string {
	return s.app.Preferences().String(KeyAPIKey)
}

// SetAPIKey stores an API key override in preferences
func (s *Settings) SetAPIKey(key string) {
	s.app.Preferences().SetString(KeyAPIKey, key)
}

// GetAutoRefresh returns whether a refresh runs automatically on launch
func (s *Settings) GetAutoRefresh() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRefresh, DefaultAutoRefresh)
}

// SetAutoRefresh sets whether a refresh runs automatically on launch
func (s *Settings) SetAutoRefresh(autoRefresh bool) {
	s.app.Preferences().SetBool(KeyAutoRefresh, autoRefresh)
}

// GetRefreshIntervalMinutes returns the periodic refresh interval
func (s *Settings) GetRefreshIntervalMinutes() int {
	value := s.app.Preferences().Int(KeyRefreshInterval)
	if value <= 0 {
		s.SetRefreshIntervalMinutes(DefaultRefreshInterval)
		return DefaultRefreshInterval
	}
	return value
}

// SetRefreshIntervalMinutes sets the periodic refresh interval
func (s *Settings) SetRefreshIntervalMinutes(minutes int) {
	if minutes < MinRefreshInterval {
		minutes = MinRefreshInterval
	}
	if minutes > MaxRefreshInterval {
		minutes = MaxRefreshInterval
	}
	s.app.Preferences().SetInt(KeyRefreshInterval, minutes)
}

// GetMaxParallelFetches returns the maximum number of concurrent series fetches
func (s *Settings) GetMaxParallelFetches() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelFetches(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelFetches sets the maximum number of concurrent series fetches
func (s *Settings) SetMaxParallelFetches(count int) {
	if count < MinMaxParallel {
		count = MinMaxParallel
	}
	if count > MaxMaxParallel {
		count = MaxMaxParallel
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetExportDirectory returns the configured export directory
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeExportDir()
		if err != nil {
			defaultDir = os.TempDir()
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
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
