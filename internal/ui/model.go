package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"diskmaid/internal/config"
	"diskmaid/internal/domain"
	"diskmaid/internal/services"
	"diskmaid/internal/state"
)

const (
	settingsFieldFilter = iota
	settingsFieldPath
	settingsFieldUnit
	settingsFieldSort
	settingsFieldCount
)

var menuItems = []string{"File & Scan", "Settings", "Help", "Exit"}

type Model struct {
	state   *state.State
	scanner services.Scanner
	actions services.Actions
	keys    KeyMap

	status   string
	scanning bool
	// scanGeneration stamps each dispatched scan; a bumped counter makes
	// the eventual result message stale. The walk itself is never
	// interrupted, only its result is dropped.
	scanGeneration int

	width   int
	height  int
	viewTop int

	menuCursor int

	pathInput   textinput.Model
	editingPath bool

	filterInput      textinput.Model
	defaultPathInput textinput.Model
	settingsFocus    int
}

type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

func NewModel(appState *state.State, scanner services.Scanner, actions services.Actions) Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "Enter path (e.g., /home/user or C:\\Users)"
	pathInput.SetValue(appState.ScanPath)

	filterInput := textinput.New()
	filterInput.Placeholder = "e.g., *.txt or *"
	filterInput.SetValue(appState.FilterBuffer)

	defaultPathInput := textinput.New()
	defaultPathInput.Placeholder = "Leave empty for Home"
	defaultPathInput.SetValue(appState.DefaultPathBuffer)

	return Model{
		state:            appState,
		scanner:          scanner,
		actions:          actions,
		keys:             DefaultKeyMap(),
		status:           fmt.Sprintf("Welcome! Ready to scan: %s", appState.ScanPath),
		width:            100,
		height:           30,
		pathInput:        pathInput,
		filterInput:      filterInput,
		defaultPathInput: defaultPathInput,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) ConfigSnapshot() config.Config {
	return model.state.Config
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.ensureCursorVisible()
		return model, nil
	case scanResultMsg:
		if typed.generation != model.scanGeneration {
			// Result of a stopped or superseded scan.
			return model, nil
		}
		model.scanning = false
		if typed.err != nil {
			model.status = fmt.Sprintf("Scan error: %v", typed.err)
			return model, nil
		}
		model.state.SetEntries(typed.result.Entries)
		model.viewTop = 0
		summary := model.state.Summary()
		model.status = fmt.Sprintf(
			"Scan complete! %s files, %s dirs. Size: %s",
			humanize.Comma(summary.FileCount),
			humanize.Comma(summary.DirCount),
			model.state.Config.Unit.Format(summary.TotalBytes),
		)
		return model, nil
	case actionResultMsg:
		return model.handleActionResult(typed)
	case configSavedMsg:
		if typed.err != nil {
			model.status = fmt.Sprintf("Error saving settings: %v", typed.err)
		} else {
			model.status = "Settings saved successfully!"
		}
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) handleActionResult(msg actionResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch msg.result.Type {
		case services.ActionDelete:
			model.status = fmt.Sprintf("Failed to delete file: %v", msg.err)
		case services.ActionOpenFolder:
			model.status = fmt.Sprintf("Failed to open folder: %v", msg.err)
		default:
			model.status = fmt.Sprintf("Action failed: %v", msg.err)
		}
		return model, nil
	}
	if msg.result.Type == services.ActionDelete {
		model.state.RemoveEntry(msg.result.Path)
		model.ensureCursorVisible()
	}
	model.status = msg.result.Message
	return model, nil
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, model.keys.Quit) && !model.capturingText() {
		return model, tea.Quit
	}

	switch model.state.Screen {
	case state.ScreenMainMenu:
		return model.updateMainMenu(msg)
	case state.ScreenFileScan:
		return model.updateFileScan(msg)
	case state.ScreenSettings:
		return model.updateSettings(msg)
	case state.ScreenHelp:
		return model.updateHelp(msg)
	}
	return model, nil
}

func (model Model) capturingText() bool {
	if model.state.Screen == state.ScreenFileScan {
		return model.editingPath
	}
	if model.state.Screen == state.ScreenSettings {
		return model.settingsFocus == settingsFieldFilter || model.settingsFocus == settingsFieldPath
	}
	return false
}

func (model Model) updateMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Up):
		if model.menuCursor > 0 {
			model.menuCursor--
		}
	case key.Matches(msg, model.keys.Down):
		if model.menuCursor < len(menuItems)-1 {
			model.menuCursor++
		}
	case key.Matches(msg, model.keys.Help):
		model.state.Screen = state.ScreenHelp
	case key.Matches(msg, model.keys.Enter):
		switch model.menuCursor {
		case 0:
			model.state.Screen = state.ScreenFileScan
			model.state.PendingDelete = ""
		case 1:
			model.state.Screen = state.ScreenSettings
			model = model.syncSettingsInputs()
		case 2:
			model.state.Screen = state.ScreenHelp
		case 3:
			return model, tea.Quit
		}
	}
	return model, nil
}

func (model Model) updateFileScan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.editingPath {
		switch msg.Type {
		case tea.KeyEnter:
			model.editingPath = false
			model.pathInput.Blur()
			model.state.ScanPath = model.pathInput.Value()
			model.status = fmt.Sprintf("Ready to scan: %s", model.state.ScanPath)
			return model, nil
		case tea.KeyEsc:
			model.editingPath = false
			model.pathInput.Blur()
			model.pathInput.SetValue(model.state.ScanPath)
			return model, nil
		}
		var cmd tea.Cmd
		model.pathInput, cmd = model.pathInput.Update(msg)
		return model, cmd
	}

	switch {
	case model.state.PendingDelete != "" && key.Matches(msg, model.keys.Confirm):
		path := model.state.PendingDelete
		model.state.PendingDelete = ""
		model.status = fmt.Sprintf("Deleting %s...", path)
		return model, model.actionCmd(services.ActionRequest{Type: services.ActionDelete, Path: path})
	case model.state.PendingDelete != "" && (key.Matches(msg, model.keys.Cancel) || key.Matches(msg, model.keys.Back)):
		model.state.PendingDelete = ""
		model.status = "Deletion cancelled."
		return model, nil
	case key.Matches(msg, model.keys.Back):
		model.state.Screen = state.ScreenMainMenu
		model.status = "Welcome to Disk Maid!"
		return model, nil
	case key.Matches(msg, model.keys.EditPath):
		model.editingPath = true
		model.pathInput.SetValue(model.state.ScanPath)
		return model, model.pathInput.Focus()
	case key.Matches(msg, model.keys.Scan):
		return model.startScan()
	case key.Matches(msg, model.keys.Stop):
		if model.scanning {
			model.scanning = false
			model.scanGeneration++
			model.status = "Scan stopped."
		}
		return model, nil
	case key.Matches(msg, model.keys.Sort):
		model.state.Resort(model.state.CurrentSort.Next())
		model.ensureCursorVisible()
		model.status = fmt.Sprintf("Sort By: %s", model.state.CurrentSort.Label())
		return model, nil
	case key.Matches(msg, model.keys.Up):
		if model.state.Cursor > 0 {
			model.state.Cursor--
			model.ensureCursorVisible()
		}
		return model, nil
	case key.Matches(msg, model.keys.Down):
		if model.state.Cursor < len(model.state.Entries)-1 {
			model.state.Cursor++
			model.ensureCursorVisible()
		}
		return model, nil
	case key.Matches(msg, model.keys.Delete):
		entry := model.state.CurrentEntry()
		if entry == nil || entry.IsDir {
			return model, nil
		}
		model.state.PendingDelete = entry.Path
		model.status = "Waiting for confirmation..."
		return model, nil
	case key.Matches(msg, model.keys.Open):
		entry := model.state.CurrentEntry()
		if entry == nil {
			return model, nil
		}
		return model, model.actionCmd(services.ActionRequest{Type: services.ActionOpenFolder, Path: entry.Path})
	default:
		return model, nil
	}
}

func (model Model) startScan() (tea.Model, tea.Cmd) {
	if model.scanning {
		model.status = "Scan already running"
		return model, nil
	}
	path := model.state.ScanPath
	// Pre-flight validation is the caller's job; the scanner only fails on
	// a root it cannot list.
	if err := services.ValidateRoot(path); err != nil {
		model.status = fmt.Sprintf("Error: %v", err)
		return model, nil
	}

	model.scanning = true
	model.scanGeneration++
	model.state.SetEntries(nil)
	model.viewTop = 0
	model.status = fmt.Sprintf("Scanning %s... (limited to %s files)", path, humanize.Comma(services.MaxScanEntries))

	request := services.ScanRequest{
		RootPath: path,
		Filter:   model.state.Config.ScanFilter,
	}
	generation := model.scanGeneration
	scanner := model.scanner
	return model, func() tea.Msg {
		result, err := scanner.Scan(context.Background(), request)
		return scanResultMsg{generation: generation, result: result, err: err}
	}
}

func (model Model) actionCmd(request services.ActionRequest) tea.Cmd {
	actions := model.actions
	return func() tea.Msg {
		result, err := actions.Execute(context.Background(), request)
		return actionResultMsg{result: result, err: err}
	}
}

func (model Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		model = model.flushSettingsInputs()
		model.state.Screen = state.ScreenMainMenu
		model.status = "Welcome to Disk Maid!"
		return model, nil
	case tea.KeyTab:
		model = model.flushSettingsInputs()
		model.settingsFocus = (model.settingsFocus + 1) % settingsFieldCount
		return model.syncSettingsFocus(), nil
	case tea.KeyEnter:
		return model.saveSettings()
	}

	switch model.settingsFocus {
	case settingsFieldFilter:
		var cmd tea.Cmd
		model.filterInput, cmd = model.filterInput.Update(msg)
		model.state.FilterBuffer = model.filterInput.Value()
		return model, cmd
	case settingsFieldPath:
		var cmd tea.Cmd
		model.defaultPathInput, cmd = model.defaultPathInput.Update(msg)
		model.state.DefaultPathBuffer = model.defaultPathInput.Value()
		return model, cmd
	case settingsFieldUnit:
		if key.Matches(msg, model.keys.Left) || key.Matches(msg, model.keys.Right) {
			model.state.SelectedUnit = model.state.SelectedUnit.Next()
		}
		return model, nil
	case settingsFieldSort:
		if key.Matches(msg, model.keys.Right) {
			model.state.SettingsSort = model.state.SettingsSort.Next()
		}
		if key.Matches(msg, model.keys.Left) {
			model.state.SettingsSort = prevSortMethod(model.state.SettingsSort)
		}
		return model, nil
	}
	return model, nil
}

func (model Model) saveSettings() (tea.Model, tea.Cmd) {
	model = model.flushSettingsInputs()
	cfg := model.state.ApplySettings()
	model.status = "Saving settings..."
	return model, func() tea.Msg {
		return configSavedMsg{err: config.SaveConfig(cfg)}
	}
}

func (model Model) flushSettingsInputs() Model {
	model.state.FilterBuffer = model.filterInput.Value()
	model.state.DefaultPathBuffer = model.defaultPathInput.Value()
	return model
}

func (model Model) syncSettingsInputs() Model {
	model.filterInput.SetValue(model.state.FilterBuffer)
	model.defaultPathInput.SetValue(model.state.DefaultPathBuffer)
	model.settingsFocus = settingsFieldFilter
	return model.syncSettingsFocus()
}

func (model Model) syncSettingsFocus() Model {
	model.filterInput.Blur()
	model.defaultPathInput.Blur()
	switch model.settingsFocus {
	case settingsFieldFilter:
		model.filterInput.Focus()
	case settingsFieldPath:
		model.defaultPathInput.Focus()
	}
	return model
}

func (model Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
		model.state.Screen = state.ScreenMainMenu
		model.status = "Welcome to Disk Maid!"
	}
	return model, nil
}

func prevSortMethod(method domain.SortMethod) domain.SortMethod {
	methods := domain.SortMethods()
	for index, candidate := range methods {
		if candidate == method {
			return methods[(index+len(methods)-1)%len(methods)]
		}
	}
	return domain.SortNameAZ
}

func (model *Model) ensureCursorVisible() {
	total := len(model.state.Entries)
	if total == 0 {
		model.state.Cursor = 0
		model.viewTop = 0
		return
	}
	if model.state.Cursor >= total {
		model.state.Cursor = total - 1
	}
	if model.state.Cursor < 0 {
		model.state.Cursor = 0
	}
	listHeight := model.listHeight()
	if listHeight <= 0 {
		return
	}
	if model.state.Cursor < model.viewTop {
		model.viewTop = model.state.Cursor
	}
	if model.state.Cursor >= model.viewTop+listHeight {
		model.viewTop = model.state.Cursor - listHeight + 1
	}
	maxTop := total - listHeight
	if maxTop < 0 {
		maxTop = 0
	}
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	height := model.height - 9
	if height < 3 {
		return 3
	}
	return height
}
