package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the snapshot service and renders
// indicator rows, the daily topic card, notifications, and settings. All UI
// strings are localized via Localization.
