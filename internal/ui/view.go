package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"diskmaid/internal/state"
)

type uiStyles struct {
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	statusStyle lipgloss.Style
	warnStyle   lipgloss.Style
	cursorStyle lipgloss.Style
	dangerStyle lipgloss.Style
	panelBorder lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		headerStyle: lipgloss.NewStyle().Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		dangerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := defaultStyles()
	var body string
	switch model.state.Screen {
	case state.ScreenMainMenu:
		body = renderMainMenu(model, styles)
	case state.ScreenFileScan:
		body = renderFileScan(model, styles)
	case state.ScreenSettings:
		body = renderSettings(model, styles)
	case state.ScreenHelp:
		body = renderHelp(styles)
	}
	return strings.Join([]string{body, renderFooter(model, styles)}, "\n")
}

func renderMainMenu(model Model, styles uiStyles) string {
	lines := []string{styles.titleStyle.Render("Disk Maid"), ""}
	for index, item := range menuItems {
		line := "  " + item
		if index == model.menuCursor {
			line = styles.cursorStyle.Render("> " + item)
		}
		if item == "Exit" && index == model.menuCursor {
			line = styles.dangerStyle.Render("> " + item)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", styles.mutedStyle.Render("↑/↓ choose  enter select  q quit"))
	return styles.panelBorder.Render(strings.Join(lines, "\n"))
}

func renderFileScan(model Model, styles uiStyles) string {
	lines := []string{styles.titleStyle.Render(state.ScreenFileScan.Title())}

	pathLine := fmt.Sprintf("Path: %s", model.state.ScanPath)
	if model.editingPath {
		pathLine = "Path: " + model.pathInput.View()
	}
	lines = append(lines, pathLine)
	lines = append(lines, styles.mutedStyle.Render(fmt.Sprintf(
		"Filter: %s   Sort By: %s", model.state.Config.ScanFilter, model.state.CurrentSort.Label())))

	if model.scanning {
		lines = append(lines, styles.statusStyle.Render("Scanning..."))
	}

	entries := model.state.Entries
	if len(entries) > 0 {
		lines = append(lines, styles.headerStyle.Render(fmt.Sprintf(
			"Found %s items:", humanize.Comma(int64(len(entries))))))
		lines = append(lines, renderEntryRows(model, styles)...)
	} else if !model.scanning {
		lines = append(lines, styles.mutedStyle.Render("No results - press s to scan"))
	}

	return styles.panelBorder.Render(strings.Join(lines, "\n"))
}

func renderEntryRows(model Model, styles uiStyles) []string {
	entries := model.state.Entries
	start := model.viewTop
	if start > len(entries) {
		start = len(entries)
	}
	end := start + model.listHeight()
	if end > len(entries) {
		end = len(entries)
	}

	rows := make([]string, 0, end-start+1)
	unit := model.state.Config.Unit
	for index := start; index < end; index++ {
		entry := entries[index]
		var text string
		if entry.IsDir {
			text = fmt.Sprintf("[DIR] %s", entry.Path)
		} else {
			text = fmt.Sprintf("%s - %s", unit.Format(entry.Size), entry.Path)
		}
		if model.state.PendingDelete == entry.Path {
			text += "  Are you sure? (y/n)"
		}
		prefix := "  "
		if index == model.state.Cursor {
			prefix = "> "
		}
		text = truncateLine(prefix+text, model.width-4)
		switch {
		case model.state.PendingDelete == entry.Path:
			text = styles.dangerStyle.Render(text)
		case index == model.state.Cursor:
			text = styles.cursorStyle.Render(text)
		}
		rows = append(rows, text)
	}
	if end < len(entries) {
		rows = append(rows, styles.mutedStyle.Render(fmt.Sprintf(
			"... and %s more items", humanize.Comma(int64(len(entries)-end)))))
	}
	return rows
}

func renderSettings(model Model, styles uiStyles) string {
	marker := func(field int) string {
		if model.settingsFocus == field {
			return styles.cursorStyle.Render("> ")
		}
		return "  "
	}

	lines := []string{
		styles.titleStyle.Render(state.ScreenSettings.Title()),
		"",
		marker(settingsFieldFilter) + "Scan Filter: " + model.filterInput.View(),
		marker(settingsFieldPath) + "Default Path: " + model.defaultPathInput.View(),
		marker(settingsFieldUnit) + fmt.Sprintf("Display Unit: %s", model.state.SelectedUnit),
		marker(settingsFieldSort) + fmt.Sprintf("Default Sort Order: %s", model.state.SettingsSort.Label()),
		"",
		styles.mutedStyle.Render("tab next field  ←/→ change value  enter save  esc back"),
	}
	return styles.panelBorder.Render(strings.Join(lines, "\n"))
}

func renderHelp(styles uiStyles) string {
	lines := []string{
		styles.titleStyle.Render(state.ScreenHelp.Title()),
		"",
		styles.headerStyle.Render("How to Use:"),
		"1. Choose 'File & Scan' from the main menu",
		"2. Press e to edit the path, enter to confirm",
		"3. Press s to start the scan",
		"4. Press o to cycle the sort order",
		"5. Press g to open an entry's folder",
		"6. Press d then y to delete a file",
		"",
		styles.headerStyle.Render("Settings:"),
		"• Set a Default Path to auto-load",
		"• Set a Default Sort Order for consistent listing",
		"• Change the scan filter and display unit",
		"",
		styles.headerStyle.Render("About:"),
		"Disk Maid v2.5.0",
		"",
		styles.mutedStyle.Render("esc back"),
	}
	return styles.panelBorder.Render(strings.Join(lines, "\n"))
}

func renderFooter(model Model, styles uiStyles) string {
	statusStyle := styles.statusStyle
	lowered := strings.ToLower(model.status)
	if strings.Contains(lowered, "error") || strings.Contains(lowered, "failed") {
		statusStyle = styles.warnStyle
	}
	return statusStyle.Render(truncateLine(model.status, model.width))
}

func truncateLine(line string, width int) string {
	if width <= 3 || len(line) <= width {
		return line
	}
	return line[:width-3] + "..."
}
