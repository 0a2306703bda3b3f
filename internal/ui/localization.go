package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyIndicatorsTitle  = "indicators_title"
	KeyTopicTitle       = "topic_title"
	KeyRefresh          = "refresh"
	KeyRefreshing       = "refreshing"
	KeyLastRefresh      = "last_refresh"
	KeyRefreshFailed    = "refresh_failed"
	KeyExport           = "export"
	KeyExportCompleted  = "export_completed"
	KeyExportFailed     = "export_failed"
	KeyNoSnapshot       = "no_snapshot"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyDetails          = "details"
	KeyClose            = "close"
	KeyAPIKey           = "api_key"
	KeyAPIKeyMissing    = "api_key_missing"
	KeyAutoRefresh      = "auto_refresh"
	KeyRefreshInterval  = "refresh_interval"
	KeyMaxParallel      = "max_parallel"
	KeyExportDirectory  = "export_directory"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpeningFile = "error_opening_file"
	KeySummaryWindow    = "summary_window"
	KeySummaryLoading   = "summary_loading"
	KeySummaryFailed    = "summary_failed"
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
		KeyAppTitle:         "US Macro Dashboard",
		KeyIndicatorsTitle:  "US Macro Indicators",
		KeyTopicTitle:       "Daily Algorithm Topic",
		KeyRefresh:          "Refresh",
		KeyRefreshing:       "Refreshing...",
		KeyLastRefresh:      "Last refresh",
		KeyRefreshFailed:    "Refresh failed",
		KeyExport:           "Export Snapshot",
		KeyExportCompleted:  "Snapshot exported",
		KeyExportFailed:     "Export failed",
		KeyNoSnapshot:       "No snapshot yet. Refresh first.",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyDetails:          "Details",
		KeyClose:            "Close",
		KeyAPIKey:           "FRED API Key",
		KeyAPIKeyMissing:    "FRED API key not set. Add it in Settings or via FRED_API_KEY.",
		KeyAutoRefresh:      "Refresh on launch",
		KeyRefreshInterval:  "Refresh Interval (minutes)",
		KeyMaxParallel:      "Max Parallel Fetches",
		KeyExportDirectory:  "Export Directory",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyErrorOpeningFile: "Error opening file",
		KeySummaryWindow:    "Recent window",
		KeySummaryLoading:   "Loading series summary...",
		KeySummaryFailed:    "Summary unavailable",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Макропанель США",
		KeyIndicatorsTitle:  "Макроиндикаторы США",
		KeyTopicTitle:       "Алгоритм дня",
		KeyRefresh:          "Обновить",
		KeyRefreshing:       "Обновление...",
		KeyLastRefresh:      "Последнее обновление",
		KeyRefreshFailed:    "Ошибка обновления",
		KeyExport:           "Экспорт снимка",
		KeyExportCompleted:  "Снимок экспортирован",
		KeyExportFailed:     "Ошибка экспорта",
		KeyNoSnapshot:       "Снимка ещё нет. Сначала обновите.",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyDetails:          "Подробнее",
		KeyClose:            "Закрыть",
		KeyAPIKey:           "Ключ FRED API",
		KeyAPIKeyMissing:    "Ключ FRED API не задан. Добавьте его в настройках или через FRED_API_KEY.",
		KeyAutoRefresh:      "Обновлять при запуске",
		KeyRefreshInterval:  "Интервал обновления (минуты)",
		KeyMaxParallel:      "Макс. параллельных запросов",
		KeyExportDirectory:  "Папка экспорта",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeySummaryWindow:    "Недавнее окно",
		KeySummaryLoading:   "Загрузка сводки ряда...",
		KeySummaryFailed:    "Сводка недоступна",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Painel Macro dos EUA",
		KeyIndicatorsTitle:  "Indicadores Macro dos EUA",
		KeyTopicTitle:       "Tópico de Algoritmo do Dia",
		KeyRefresh:          "Atualizar",
		KeyRefreshing:       "Atualizando...",
		KeyLastRefresh:      "Última atualização",
		KeyRefreshFailed:    "Falha na atualização",
		KeyExport:           "Exportar Snapshot",
		KeyExportCompleted:  "Snapshot exportado",
		KeyExportFailed:     "Falha na exportação",
		KeyNoSnapshot:       "Ainda não há snapshot. Atualize primeiro.",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyDetails:          "Detalhes",
		KeyClose:            "Fechar",
		KeyAPIKey:           "Chave da API FRED",
		KeyAPIKeyMissing:    "Chave da API FRED não definida. Adicione nas Configurações ou via FRED_API_KEY.",
		KeyAutoRefresh:      "Atualizar ao iniciar",
		KeyRefreshInterval:  "Intervalo de atualização (minutos)",
		KeyMaxParallel:      "Max Buscas Paralelas",
		KeyExportDirectory:  "Diretório de Exportação",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeySummaryWindow:    "Janela recente",
		KeySummaryLoading:   "Carregando resumo da série...",
		KeySummaryFailed:    "Resumo indisponível",
	}
}
