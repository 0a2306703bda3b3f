package main

import (
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

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID("com.macroview.macro-dashboard")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Macro Dashboard")
	myWindow.Resize(fyne.NewSize(900, 620))

	settings := config.NewSettings(myApp)

	client := fred.NewClient("")
	client.KeyFunc = settings.GetAPIKey

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, macro.NewService(client, settings.GetMaxParallelFetches()), export.NewService())

	// Show and run
	myWindow.ShowAndRun()
}
