package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/macroview/macro-dashboard/internal/model"
)

// Workbook layout constants
const (
	SheetName = "Indicators"

	FileNamePrefix = "macro-snapshot"
	FileExtension  = ".xlsx"

	TimestampLayout = "2006-01-02 15:04:05"
)

// headers is the column order of the indicator sheet
var headers = []string{"Indicator", "FRED Series", "Value", "Status", "Error", "Refreshed At"}

// Service writes snapshots to xlsx workbooks
type Service struct{}

// NewService creates a new export service
func NewService() Exporter {
	return &Service{}
}

// ExportSnapshot writes the snapshot to a new workbook in dir and returns the
// file path
func (s *Service) ExportSnapshot(snapshot *model.Snapshot, dir string) (string, error) {
	if snapshot == nil {
		return "", fmt.Errorf("no snapshot to export")
	}
	if dir == "" {
		return "", fmt.Errorf("missing export directory")
	}

	path := filepath.Join(dir, generateFileName(snapshot))
	log.Printf("Exporting snapshot %s to %s", snapshot.ID, path)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return "", fmt.Errorf("write header %q: %w", h, err)
		}
	}

	for rowIdx, indicator := range snapshot.Indicators {
		row := []interface{}{
			indicator.Name,
			indicator.SeriesLabel(),
			indicator.FormatValue(),
			indicator.Status.String(),
			indicator.LastError,
			formatRefreshedAt(indicator.RefreshedAt),
		}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return "", fmt.Errorf("write row %d: %w", rowIdx+2, err)
			}
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	log.Printf("Snapshot %s exported: %d indicators", snapshot.ID, len(snapshot.Indicators))
	return path, nil
}

// generateFileName builds a unique workbook name for a snapshot
func generateFileName(snapshot *model.Snapshot) string {
	suffix := snapshot.ID
	if id, err := uuid.NewV7(); err == nil {
		suffix = id.String()
	}
	return fmt.Sprintf("%s-%s%s", FileNamePrefix, suffix, FileExtension)
}

// formatRefreshedAt renders the refresh time, empty for never-refreshed rows
func formatRefreshedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}
