package ui

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/macroview/macro-dashboard/internal/config"
	"github.com/macroview/macro-dashboard/internal/export"
	"github.com/macroview/macro-dashboard/internal/macro"
	"github.com/macroview/macro-dashboard/internal/model"
	"github.com/macroview/macro-dashboard/internal/platform"
	"github.com/macroview/macro-dashboard/internal/topic"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	macroSvc     macro.Provider
	exportSvc    export.Exporter
	settings     *config.Settings
	localization *Localization

	// Displayed indicators, catalog order
	indicators    []*model.Indicator
	indicatorList *widget.List

	// Header components
	titleLabel  *widget.Label
	refreshBtn  *widget.Button
	exportBtn   *widget.Button
	statusLabel *widget.Label
	topicCard   *widget.Card

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, macroSvc macro.Provider, exportSvc export.Exporter) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the export directory exists up front
	platform.CreateDirectoryIfNotExists(settings.GetExportDirectory())

	ui := &RootUI{
		window:       window,
		app:          app,
		macroSvc:     macroSvc,
		exportSvc:    exportSvc,
		settings:     settings,
		localization: localization,
	}

	// Placeholder rows until the first refresh fills in values
	for _, def := range macro.Catalog() {
		ui.indicators = append(ui.indicators, def.NewIndicator())
	}

	log.Printf("RootUI initialized with %d catalog indicators", len(ui.indicators))

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Propagate concurrency setting and subscribe to indicator updates
	ui.macroSvc.SetMaxParallel(settings.GetMaxParallelFetches())
	ui.macroSvc.SetUpdateCallback(ui.onIndicatorUpdate)

	ui.setupUI()

	// Kick off background refreshing
	if settings.GetAutoRefresh() {
		if settings.GetAPIKey() != "" {
			ui.startRefresh()
		} else {
			ui.statusLabel.SetText(localization.GetText(KeyAPIKeyMissing))
		}
	}
	go ui.runIntervalRefresh()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Header: title, refresh and export buttons, status line
	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyIndicatorsTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.refreshBtn = widget.NewButton(IconRefresh+" "+ui.localization.GetText(KeyRefresh), ui.onRefreshClick)
	ui.refreshBtn.Importance = widget.HighImportance

	ui.exportBtn = widget.NewButton(IconExport+" "+ui.localization.GetText(KeyExport), ui.onExportClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	buttonRow := container.NewHBox(ui.refreshBtn, ui.exportBtn, settingsBtn)
	header := container.NewVBox(
		container.NewBorder(nil, nil, ui.titleLabel, buttonRow),
		ui.statusLabel,
		widget.NewSeparator(),
	)

	// Create indicator list
	ui.indicatorList = widget.NewList(
		func() int {
			return len(ui.indicators)
		},
		func() fyne.CanvasObject { return ui.createIndicatorItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateIndicatorItem(id, obj) },
	)

	macroColumn := container.NewBorder(header, nil, nil, nil, ui.indicatorList)

	// Daily topic card on the right
	ui.topicCard = ui.createTopicCard()
	topicColumn := container.NewVScroll(container.NewVBox(ui.topicCard))

	split := container.NewHSplit(macroColumn, topicColumn)
	split.SetOffset(0.58)

	ui.window.SetContent(split)

	log.Printf("UI setup completed successfully")
}

// createTopicCard builds the daily algorithm topic card
func (ui *RootUI) createTopicCard() *widget.Card {
	t := topic.Today()

	blurb := widget.NewRichTextFromMarkdown(t.Blurb)
	blurb.Wrapping = fyne.TextWrapWord

	return widget.NewCard(
		ui.localization.GetText(KeyTopicTitle),
		t.Name,
		blurb,
	)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// File menu items
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), ui.onRefreshClick)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExportClick)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, exportItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.titleLabel.SetText(ui.localization.GetText(KeyIndicatorsTitle))
	ui.refreshBtn.SetText(IconRefresh + " " + ui.localization.GetText(KeyRefresh))
	ui.exportBtn.SetText(IconExport + " " + ui.localization.GetText(KeyExport))
	ui.topicCard.SetTitle(ui.localization.GetText(KeyTopicTitle))

	// Refresh list to update row texts
	ui.indicatorList.Refresh()
}

// createIndicatorItem creates a new indicator row widget for the list
func (ui *RootUI) createIndicatorItem() fyne.CanvasObject {
	// Placeholder row, updated in updateIndicatorItem
	placeholder := &model.Indicator{
		ID:     "placeholder",
		Name:   "Loading...",
		Status: model.StatusPending,
	}

	row := NewIndicatorRow(placeholder, ui.localization)
	row.SetCallbacks(ui.onShowDetails)
	return row
}

// updateIndicatorItem updates a list row with current indicator data
func (ui *RootUI) updateIndicatorItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.indicators) {
		return
	}

	indicator := ui.indicators[id]
	if indicator == nil {
		return
	}

	if row, ok := item.(*IndicatorRow); ok {
		// Re-set callbacks every update; list rows are recycled
		row.SetCallbacks(ui.onShowDetails)
		row.UpdateIndicator(indicator)
	}
}

// onRefreshClick handles the refresh button click
func (ui *RootUI) onRefreshClick() {
	if ui.settings.GetAPIKey() == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyAPIKeyMissing)), ui.window.Canvas())
		return
	}

	ui.startRefresh()
}

// startRefresh kicks off a background snapshot refresh
func (ui *RootUI) startRefresh() {
	ui.refreshBtn.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyRefreshing))

	go func() {
		snapshot, err := ui.macroSvc.Refresh(context.Background())

		fyne.Do(func() {
			ui.refreshBtn.Enable()

			if err != nil {
				log.Printf("Refresh failed: %v", err)
				ui.statusLabel.SetText(ui.localization.GetText(KeyRefreshFailed) + ": " + err.Error())
				return
			}

			ui.syncIndicators()
			ui.statusLabel.SetText(fmt.Sprintf("%s %s%s%d/%d",
				ui.localization.GetText(KeyLastRefresh),
				snapshot.FinishedAt.Format(RefreshTimeLayout),
				MiddleDotSeparator,
				snapshot.FreshCount(), len(snapshot.Indicators)))
			ui.indicatorList.Refresh()
		})
	}()
}

// runIntervalRefresh refreshes the snapshot periodically. Interval changes
// take effect on the next tick.
func (ui *RootUI) runIntervalRefresh() {
	for {
		time.Sleep(time.Duration(ui.settings.GetRefreshIntervalMinutes()) * time.Minute)

		if ui.settings.GetAPIKey() == "" {
			continue
		}

		log.Printf("Interval refresh triggered")
		fyne.Do(func() {
			ui.startRefresh()
		})
	}
}

// syncIndicators points the list at the current snapshot's indicators
func (ui *RootUI) syncIndicators() {
	snapshot := ui.macroSvc.CurrentSnapshot()
	if snapshot == nil {
		return
	}
	ui.indicators = snapshot.Indicators
}

// debouncedUIUpdate prevents excessive UI updates by limiting frequency
func (ui *RootUI) debouncedUIUpdate() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return false // Skip update if too soon
	}

	ui.lastUIUpdate = now
	return true
}

// onIndicatorUpdate handles indicator updates from the snapshot service
func (ui *RootUI) onIndicatorUpdate(indicator *model.Indicator) {
	log.Printf("Indicator update received: id=%s status=%s value=%s",
		indicator.ID, indicator.Status, indicator.FormatValue())

	// Terminal transitions always render; intermediate ones are debounced
	if !indicator.Status.IsFinished() && !ui.debouncedUIUpdate() {
		return
	}

	// Refresh the list in the UI thread
	fyne.Do(func() {
		ui.syncIndicators()
		ui.indicatorList.Refresh()
	})
}

// onShowDetails opens the detail dialog for an indicator
func (ui *RootUI) onShowDetails(indicatorID string) {
	log.Printf("onShowDetails called for indicator %s", indicatorID)

	var found *model.Indicator
	for _, in := range ui.indicators {
		if in.ID == indicatorID {
			found = in
			break
		}
	}
	if found == nil {
		log.Printf("Indicator %s not found", indicatorID)
		return
	}

	NewDetailDialog(found, ui.macroSvc, ui.localization, ui.window).Show()
}

// onExportClick handles the export button click
func (ui *RootUI) onExportClick() {
	snapshot := ui.macroSvc.CurrentSnapshot()
	if snapshot == nil || snapshot.Status != model.SnapshotStatusReady {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoSnapshot)), ui.window.Canvas())
		return
	}

	exportDir := ui.settings.GetExportDirectory()
	ui.exportBtn.Disable()

	go func() {
		path, err := ui.exportSvc.ExportSnapshot(snapshot, exportDir)

		fyne.Do(func() {
			ui.exportBtn.Enable()

			if err != nil {
				log.Printf("Export failed: %v", err)
				widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyExportFailed)+": "+err.Error()), ui.window.Canvas())
				return
			}

			log.Printf("Snapshot exported to %s", path)

			fyne.CurrentApp().SendNotification(&fyne.Notification{
				Title:   ui.localization.GetText(KeyExportCompleted),
				Content: path,
			})

			if err := platform.OpenFileInManager(path); err != nil {
				log.Printf("Error revealing exported file %s: %v", path, err)
				widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
			}
		})
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		// Apply settings that take effect immediately
		ui.macroSvc.SetMaxParallel(ui.settings.GetMaxParallelFetches())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}
