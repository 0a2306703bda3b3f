package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/macroview/macro-dashboard/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	apiKeyEntry      *widget.Entry
	autoRefreshCheck *widget.Check
	intervalEntry    *widget.Entry
	maxParallelEntry *widget.Entry
	exportDirEntry   *widget.Entry
	languageSelect   *widget.Select

	// Callback invoked after settings are saved
	onSaved func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// FRED API key entry, masked like a password field
	sd.apiKeyEntry = widget.NewPasswordEntry()
	sd.apiKeyEntry.SetPlaceHolder("abcdef0123456789")

	// Refresh on launch
	sd.autoRefreshCheck = widget.NewCheck(sd.localization.GetText(KeyAutoRefresh), nil)

	// Refresh interval in minutes
	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder("1-120")

	// Max parallel series fetches
	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-8")

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder("Export directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Data Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		sd.autoRefreshCheck,

		widget.NewLabel(sd.localization.GetText(KeyRefreshInterval)+":"),
		sd.intervalEntry,

		widget.NewLabel(sd.localization.GetText(KeyMaxParallel)+":"),
		sd.maxParallelEntry,

		widget.NewLabel(sd.localization.GetText(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewSeparator(),
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKeyOverride())
	sd.autoRefreshCheck.SetChecked(sd.settings.GetAutoRefresh())
	sd.intervalEntry.SetText(strconv.Itoa(sd.settings.GetRefreshIntervalMinutes()))
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelFetches()))
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// API key override; an empty entry clears the override so the
	// environment variable applies again
	sd.settings.SetAPIKey(sd.apiKeyEntry.Text)

	sd.settings.SetAutoRefresh(sd.autoRefreshCheck.Checked)

	// Validate and save refresh interval
	if sd.intervalEntry.Text != "" {
		if interval, err := strconv.Atoi(sd.intervalEntry.Text); err == nil {
			sd.settings.SetRefreshIntervalMinutes(interval)
		}
	}

	// Validate and save max parallel fetches
	if sd.maxParallelEntry.Text != "" {
		if maxParallel, err := strconv.Atoi(sd.maxParallelEntry.Text); err == nil {
			sd.settings.SetMaxParallelFetches(maxParallel)
		}
	}

	// Save export directory
	if sd.exportDirEntry.Text != "" {
		sd.settings.SetExportDirectory(sd.exportDirEntry.Text)
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
