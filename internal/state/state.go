package state

import (
	"os"

	"diskmaid/internal/config"
	"diskmaid/internal/domain"
)

type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenFileScan
	ScreenSettings
	ScreenHelp
)

func (screen Screen) Title() string {
	switch screen {
	case ScreenFileScan:
		return "File & Scan"
	case ScreenSettings:
		return "Settings"
	case ScreenHelp:
		return "Help & About"
	}
	return "Disk Maid"
}

// State is the application state threaded through the UI. The scanner and
// sorter never see it; they stay pure functions over explicit inputs.
type State struct {
	Screen Screen
	Config config.Config

	// Scan screen. Entries is the record list held for the session: it is
	// replaced wholesale by each scan and shrinks one record at a time as
	// deletions succeed.
	ScanPath      string
	Entries       []domain.Entry
	CurrentSort   domain.SortMethod
	Cursor        int
	PendingDelete string

	// Settings screen buffers; committed to Config only on save.
	FilterBuffer      string
	DefaultPathBuffer string
	SelectedUnit      domain.Unit
	SettingsSort      domain.SortMethod
}

func NewState(cfg config.Config) *State {
	initialPath := cfg.DefaultPath
	if initialPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			initialPath = home
		} else {
			initialPath = "."
		}
	}
	return &State{
		Screen:            ScreenMainMenu,
		Config:            cfg,
		ScanPath:          initialPath,
		CurrentSort:       cfg.DefaultSort,
		FilterBuffer:      cfg.ScanFilter,
		DefaultPathBuffer: cfg.DefaultPath,
		SelectedUnit:      cfg.Unit,
		SettingsSort:      cfg.DefaultSort,
	}
}

// SetEntries replaces the held record list with a fresh scan result and
// orders it by the current sort method.
func (appState *State) SetEntries(entries []domain.Entry) {
	appState.Entries = entries
	appState.PendingDelete = ""
	appState.Cursor = 0
	domain.SortEntries(appState.Entries, appState.CurrentSort)
}

// Resort re-orders the held list under a new sort method.
func (appState *State) Resort(method domain.SortMethod) {
	appState.CurrentSort = method
	domain.SortEntries(appState.Entries, method)
}

// RemoveEntry drops the record whose path matches exactly. It reports
// whether a record was removed; no other record is touched.
func (appState *State) RemoveEntry(path string) bool {
	for index, entry := range appState.Entries {
		if entry.Path == path {
			appState.Entries = append(appState.Entries[:index], appState.Entries[index+1:]...)
			if appState.Cursor >= len(appState.Entries) && appState.Cursor > 0 {
				appState.Cursor--
			}
			return true
		}
	}
	return false
}

// CurrentEntry returns the record under the cursor, or nil.
func (appState *State) CurrentEntry() *domain.Entry {
	if appState.Cursor < 0 || appState.Cursor >= len(appState.Entries) {
		return nil
	}
	return &appState.Entries[appState.Cursor]
}

func (appState *State) Summary() domain.Summary {
	return domain.Aggregate(appState.Entries)
}

// ApplySettings commits the settings buffers into the configuration and
// makes the new default sort the active one, matching the original's
// save-settings behavior.
func (appState *State) ApplySettings() config.Config {
	appState.Config.ScanFilter = appState.FilterBuffer
	appState.Config.Unit = appState.SelectedUnit
	appState.Config.DefaultPath = appState.DefaultPathBuffer
	appState.Config.DefaultSort = appState.SettingsSort
	appState.Resort(appState.SettingsSort)
	return appState.Config
}

// ResetSettingsBuffers reloads the buffers from the saved configuration,
// discarding unsaved edits.
func (appState *State) ResetSettingsBuffers() {
	appState.FilterBuffer = appState.Config.ScanFilter
	appState.DefaultPathBuffer = appState.Config.DefaultPath
	appState.SelectedUnit = appState.Config.Unit
	appState.SettingsSort = appState.Config.DefaultSort
}
