package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskmaid/internal/config"
	"diskmaid/internal/domain"
)

func testConfig() config.Config {
	return config.Config{
		ScanFilter:  "*",
		Unit:        domain.UnitMB,
		DefaultPath: "/scans",
		DefaultSort: domain.SortNameAZ,
	}
}

func TestNewStateUsesDefaultPathAndSort(t *testing.T) {
	appState := NewState(testConfig())

	assert.Equal(t, ScreenMainMenu, appState.Screen)
	assert.Equal(t, "/scans", appState.ScanPath)
	assert.Equal(t, domain.SortNameAZ, appState.CurrentSort)
	assert.Equal(t, "*", appState.FilterBuffer)
}

func TestNewStateFallsBackToHomeWhenNoDefaultPath(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultPath = ""

	appState := NewState(cfg)

	assert.NotEmpty(t, appState.ScanPath)
}

func TestSetEntriesSortsByCurrentSort(t *testing.T) {
	appState := NewState(testConfig())
	appState.CurrentSort = domain.SortSizeLargest

	appState.SetEntries([]domain.Entry{
		{Path: "/a", Size: 1},
		{Path: "/b", Size: 9},
		{Path: "/c", Size: 5},
	})

	require.Len(t, appState.Entries, 3)
	assert.Equal(t, "/b", appState.Entries[0].Path)
	assert.Equal(t, "/a", appState.Entries[2].Path)
	assert.Equal(t, 0, appState.Cursor)
}

func TestRemoveEntryMatchesExactPathOnly(t *testing.T) {
	appState := NewState(testConfig())
	appState.SetEntries([]domain.Entry{
		{Path: "/data/report.txt"},
		{Path: "/data/report.txt.bak"},
		{Path: "/data/other.txt"},
	})

	removed := appState.RemoveEntry("/data/report.txt")

	assert.True(t, removed)
	require.Len(t, appState.Entries, 2)
	assert.Equal(t, "/data/other.txt", appState.Entries[0].Path)
	assert.Equal(t, "/data/report.txt.bak", appState.Entries[1].Path)
}

func TestRemoveEntryUnknownPathIsNoop(t *testing.T) {
	appState := NewState(testConfig())
	appState.SetEntries([]domain.Entry{{Path: "/data/a"}})

	assert.False(t, appState.RemoveEntry("/data/missing"))
	assert.Len(t, appState.Entries, 1)
}

func TestRemoveEntryClampsCursor(t *testing.T) {
	appState := NewState(testConfig())
	appState.SetEntries([]domain.Entry{{Path: "/a"}, {Path: "/b"}})
	appState.Cursor = 1

	appState.RemoveEntry("/b")

	assert.Equal(t, 0, appState.Cursor)
	require.NotNil(t, appState.CurrentEntry())
	assert.Equal(t, "/a", appState.CurrentEntry().Path)
}

func TestCurrentEntryOutOfRangeIsNil(t *testing.T) {
	appState := NewState(testConfig())
	assert.Nil(t, appState.CurrentEntry())

	appState.SetEntries([]domain.Entry{{Path: "/a"}})
	appState.Cursor = 5
	assert.Nil(t, appState.CurrentEntry())
}

func TestApplySettingsCommitsBuffersAndResorts(t *testing.T) {
	appState := NewState(testConfig())
	appState.SetEntries([]domain.Entry{
		{Path: "/small", Size: 1},
		{Path: "/big", Size: 9},
	})
	appState.FilterBuffer = "*.mp4"
	appState.SelectedUnit = domain.UnitGB
	appState.DefaultPathBuffer = "/media"
	appState.SettingsSort = domain.SortSizeLargest

	cfg := appState.ApplySettings()

	assert.Equal(t, "*.mp4", cfg.ScanFilter)
	assert.Equal(t, domain.UnitGB, cfg.Unit)
	assert.Equal(t, "/media", cfg.DefaultPath)
	assert.Equal(t, domain.SortSizeLargest, cfg.DefaultSort)
	assert.Equal(t, domain.SortSizeLargest, appState.CurrentSort)
	assert.Equal(t, "/big", appState.Entries[0].Path)
}

func TestResetSettingsBuffersDiscardsEdits(t *testing.T) {
	appState := NewState(testConfig())
	appState.FilterBuffer = "*.tmp"
	appState.SelectedUnit = domain.UnitKB

	appState.ResetSettingsBuffers()

	assert.Equal(t, "*", appState.FilterBuffer)
	assert.Equal(t, domain.UnitMB, appState.SelectedUnit)
}

func TestSummaryAggregatesHeldEntries(t *testing.T) {
	appState := NewState(testConfig())
	appState.SetEntries([]domain.Entry{
		{Path: "/a", Size: 1024},
		{Path: "/d", IsDir: true},
	})

	summary := appState.Summary()

	assert.Equal(t, int64(1), summary.FileCount)
	assert.Equal(t, int64(1), summary.DirCount)
	assert.Equal(t, int64(1024), summary.TotalBytes)
}
