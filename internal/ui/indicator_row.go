package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/macroview/macro-dashboard/internal/model"
)

// IndicatorRow represents a compact indicator row widget
type IndicatorRow struct {
	widget.BaseWidget

	indicator    *model.Indicator
	localization *Localization

	// UI components
	nameLabel   *widget.Label
	valueLabel  *widget.Label
	statusLabel *widget.Label

	// Action buttons
	detailsBtn *widget.Button

	// Callbacks
	onDetails func(indicatorID string)
}

// NewIndicatorRow creates a new indicator row widget
func NewIndicatorRow(indicator *model.Indicator, localization *Localization) *IndicatorRow {
	if indicator == nil {
		log.Printf("Warning: NewIndicatorRow called with nil indicator")
		// Create a dummy indicator to prevent crashes
		indicator = &model.Indicator{
			ID:     "dummy",
			Name:   "Dummy Indicator",
			Status: model.StatusPending,
		}
	}

	ir := &IndicatorRow{
		indicator:    indicator,
		localization: localization,
	}
	ir.ExtendBaseWidget(ir)
	ir.createUI()
	ir.updateFromIndicator()
	return ir
}

// SetCallbacks sets the action callbacks
func (ir *IndicatorRow) SetCallbacks(onDetails func(indicatorID string)) {
	if onDetails == nil {
		log.Printf("Warning: onDetails callback is nil for indicator %s", ir.indicator.ID)
	}
	ir.onDetails = onDetails
}

// UpdateIndicator updates the row with new indicator data
func (ir *IndicatorRow) UpdateIndicator(indicator *model.Indicator) {
	if indicator == nil {
		log.Printf("Warning: UpdateIndicator called with nil indicator for %s", ir.indicator.ID)
		return
	}

	ir.indicator = indicator
	ir.updateFromIndicator()
	ir.Refresh()
}

// createUI creates the UI components
func (ir *IndicatorRow) createUI() {
	ir.nameLabel = widget.NewLabel("")
	ir.nameLabel.Alignment = fyne.TextAlignLeading
	ir.nameLabel.Truncation = fyne.TextTruncateEllipsis

	ir.valueLabel = widget.NewLabel("")
	ir.valueLabel.Alignment = fyne.TextAlignTrailing
	ir.valueLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	ir.statusLabel = widget.NewLabel("")
	ir.statusLabel.Alignment = fyne.TextAlignTrailing

	ir.detailsBtn = widget.NewButton(IconDetails, func() {
		current := ir.indicator
		if ir.onDetails == nil {
			log.Printf("onDetails callback is nil for indicator %s", current.ID)
			return
		}
		ir.onDetails(current.ID)
	})
	ir.detailsBtn.Importance = widget.LowImportance
}

// updateFromIndicator updates UI components based on indicator state
func (ir *IndicatorRow) updateFromIndicator() {
	if ir.indicator == nil {
		log.Printf("Warning: updateFromIndicator called with nil indicator")
		return
	}

	ir.nameLabel.SetText(ir.indicator.Name)
	ir.valueLabel.SetText(ir.indicator.FormatValue())

	// Update status label color and text
	switch ir.indicator.Status {
	case model.StatusError:
		ir.statusLabel.Importance = widget.DangerImportance
		ir.statusLabel.SetText(IconError + " " + ir.indicator.Status.String())
	case model.StatusFresh:
		ir.statusLabel.Importance = widget.SuccessImportance
		ir.statusLabel.SetText(ir.indicator.Status.String())
	case model.StatusNoData:
		ir.statusLabel.Importance = widget.WarningImportance
		ir.statusLabel.SetText(ir.indicator.Status.String())
	case model.StatusFetching:
		ir.statusLabel.Importance = widget.HighImportance
		ir.statusLabel.SetText(IconRefresh + " " + ir.indicator.Status.String())
	case model.StatusPending:
		ir.statusLabel.Importance = widget.MediumImportance
		ir.statusLabel.SetText("⏳ " + ir.indicator.Status.String())
	default:
		ir.statusLabel.Importance = widget.MediumImportance
		ir.statusLabel.SetText(ir.indicator.Status.String())
	}

	// Details stay available in every state; the dialog shows errors too
	ir.detailsBtn.Enable()
}

// CreateRenderer creates the widget renderer
func (ir *IndicatorRow) CreateRenderer() fyne.WidgetRenderer {
	return &indicatorRowRenderer{row: ir}
}

// indicatorRowRenderer renders the indicator row widget
type indicatorRowRenderer struct {
	row    *IndicatorRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *indicatorRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *indicatorRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *indicatorRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *indicatorRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *indicatorRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *indicatorRowRenderer) createLayout() {
	ir := r.row

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Right cluster: value, status, details pinned to the row's right edge
	rightCluster := container.NewHBox(
		fixedWidth(ValueLabelWidth, ir.valueLabel),
		fixedWidth(StatusLabelWidth, ir.statusLabel),
		ir.detailsBtn,
	)

	// Border layout keeps the name expandable on the left
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, ir.nameLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
