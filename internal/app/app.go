package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"diskmaid/internal/config"
	"diskmaid/internal/services"
	"diskmaid/internal/state"
	"diskmaid/internal/ui"
)

func Run() {
	base := config.DefaultConfig()
	loaded, loadErr := config.LoadConfig()
	if loadErr == nil {
		base = loaded
	}
	cfg := config.ParseFlags(base)

	appState := state.NewState(cfg)
	scanner := services.NewFSScanner()
	actions := services.NewFSActions()

	model := ui.NewModel(appState, scanner, actions)
	if loadErr != nil {
		model = model.WithStatus("Config warning: using defaults")
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		fmt.Println("Disk Maid error:", err)
		return
	}
	if provider, ok := finalModel.(ui.ConfigProvider); ok {
		if err := config.SaveConfig(provider.ConfigSnapshot()); err != nil {
			fmt.Println("Disk Maid config save error:", err)
		}
	}
}
