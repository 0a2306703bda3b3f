package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/macroview/macro-dashboard/internal/config"
	"github.com/macroview/macro-dashboard/internal/export"
	"github.com/macroview/macro-dashboard/internal/fred"
	"github.com/macroview/macro-dashboard/internal/macro"
	"github.com/macroview/macro-dashboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.macroview.macro-dashboard"
	AppName = "Macro Dashboard"

	WindowWidth  = 900
	WindowHeight = 620
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Load FRED_API_KEY and friends from a .env file when present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	client := fred.NewClient("")
	client.KeyFunc = settings.GetAPIKey

	macroSvc := macro.NewService(client, settings.GetMaxParallelFetches())
	exportSvc := export.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, macroSvc, exportSvc)

	// Show and run
	myWindow.ShowAndRun()
}
