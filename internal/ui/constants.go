package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconExport   = "⇩"
	IconError    = "❌"
	IconDetails  = "ⓘ"
	IconClose    = "×"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (IndicatorRow / lists)
const (
	ValueLabelWidth  float32 = 90
	StatusLabelWidth float32 = 84

	RowMinWidth  float32 = 340
	RowMinHeight float32 = 36

	MacroColumnWidth float32 = 420
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
	DetailDialogWidth    float32 = 420
	DetailDialogHeight   float32 = 320
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

// Timestamp format for the last-refresh label
const (
	RefreshTimeLayout = "15:04:05"
)
