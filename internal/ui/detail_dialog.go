package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/macroview/macro-dashboard/internal/macro"
	"github.com/macroview/macro-dashboard/internal/model"
)

// DetailDialog shows one indicator in depth: its source series, current
// status, last error, and descriptive statistics over a recent window of the
// primary series.
type DetailDialog struct {
	indicator    *model.Indicator
	macroSvc     macro.Provider
	localization *Localization
	window       fyne.Window

	summaryLabel *widget.Label
}

// NewDetailDialog creates a detail dialog for the given indicator
func NewDetailDialog(indicator *model.Indicator, macroSvc macro.Provider, localization *Localization, window fyne.Window) *DetailDialog {
	return &DetailDialog{
		indicator:    indicator,
		macroSvc:     macroSvc,
		localization: localization,
		window:       window,
	}
}

// Show displays the dialog and starts the background summary fetch
func (dd *DetailDialog) Show() {
	in := dd.indicator

	nameLabel := widget.NewLabel(in.Name)
	nameLabel.TextStyle = fyne.TextStyle{Bold: true}

	valueLabel := widget.NewLabel(in.FormatValue())
	valueLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	seriesLabel := widget.NewLabel("FRED: " + in.SeriesLabel())
	statusLabel := widget.NewLabel(in.Status.String())

	rows := []fyne.CanvasObject{
		container.NewBorder(nil, nil, nameLabel, valueLabel),
		seriesLabel,
		statusLabel,
	}

	if in.LastError != "" {
		errorLabel := widget.NewLabel(IconError + " " + in.LastError)
		errorLabel.Importance = widget.DangerImportance
		errorLabel.Wrapping = fyne.TextWrapWord
		rows = append(rows, errorLabel)
	}

	dd.summaryLabel = widget.NewLabel(dd.localization.GetText(KeySummaryLoading))
	dd.summaryLabel.Wrapping = fyne.TextWrapWord

	rows = append(rows,
		widget.NewSeparator(),
		widget.NewLabel(dd.localization.GetText(KeySummaryWindow)+":"),
		dd.summaryLabel,
	)

	content := container.NewVBox(rows...)

	d := dialog.NewCustom(
		dd.localization.GetText(KeyDetails),
		dd.localization.GetText(KeyClose),
		content,
		dd.window,
	)
	d.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))
	d.Show()

	dd.loadSummary()
}

// loadSummary fetches the primary-series summary in the background and
// updates the label on the UI thread when done
func (dd *DetailDialog) loadSummary() {
	if len(dd.indicator.SeriesIDs) == 0 {
		dd.summaryLabel.SetText(dd.localization.GetText(KeySummaryFailed))
		return
	}

	seriesID := dd.indicator.SeriesIDs[0]

	go func() {
		summary, err := dd.macroSvc.SeriesSummary(context.Background(), seriesID, macro.DefaultSummaryWindow)

		fyne.Do(func() {
			if err != nil {
				log.Printf("Series summary failed for %s: %v", seriesID, err)
				dd.summaryLabel.SetText(dd.localization.GetText(KeySummaryFailed))
				return
			}

			dd.summaryLabel.SetText(fmt.Sprintf(
				"%s %s%sn=%d%smean %.2f ± %.2f%srange [%.2f, %.2f]",
				seriesID, summary.TrendArrow(),
				MiddleDotSeparator, summary.Count,
				MiddleDotSeparator, summary.Mean, summary.StdDev,
				MiddleDotSeparator, summary.Min, summary.Max,
			))
		})
	}()
}
