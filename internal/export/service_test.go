package export

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/macroview/macro-dashboard/internal/model"
)

func sampleSnapshot() *model.Snapshot {
	fresh := &model.Indicator{
		ID:        "unemployment_rate",
		Name:      "Unemployment Rate (%)",
		SeriesIDs: []string{"UNRATE"},
	}
	fresh.SetValue(4.1)
	fresh.RefreshedAt = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	failed := &model.Indicator{
		ID:        "yield_curve_3m_10y",
		Name:      "Yield Curve 3m–10y",
		SeriesIDs: []string{"DGS10", "DTB3"},
	}
	failed.SetError(assert.AnError)

	snapshot := model.NewSnapshot("snap-1", []*model.Indicator{fresh, failed})
	snapshot.Finish()
	return snapshot
}

func TestExportSnapshot(t *testing.T) {
	dir := t.TempDir()
	service := NewService()

	path, err := service.ExportSnapshot(sampleSnapshot(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), FileNamePrefix))
	assert.True(t, strings.HasSuffix(path, FileExtension))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])

	assert.Equal(t, "Unemployment Rate (%)", rows[1][0])
	assert.Equal(t, "UNRATE", rows[1][1])
	assert.Equal(t, "4.10", rows[1][2])
	assert.Equal(t, "Fresh", rows[1][3])

	assert.Equal(t, "DGS10, DTB3", rows[2][1])
	assert.Equal(t, "—", rows[2][2])
	assert.Equal(t, "Error", rows[2][3])
}

func TestExportSnapshotNil(t *testing.T) {
	service := NewService()
	_, err := service.ExportSnapshot(nil, t.TempDir())
	require.Error(t, err)
}

func TestExportSnapshotMissingDir(t *testing.T) {
	service := NewService()
	_, err := service.ExportSnapshot(sampleSnapshot(), "")
	require.Error(t, err)
}

func TestExportSnapshotCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	service := NewService()

	path, err := service.ExportSnapshot(sampleSnapshot(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}
