package export

import (
	"github.com/macroview/macro-dashboard/internal/model"
)

// Exporter defines the interface for the snapshot export service.
type Exporter interface {
	ExportSnapshot(snapshot *model.Snapshot, dir string) (string, error)
}
