// Package main is the entry point for the terminal catalog browser.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/talhanuhuymaz/Renart-Case/cmd/catalog/tui"
	"github.com/talhanuhuymaz/Renart-Case/config"
	"github.com/talhanuhuymaz/Renart-Case/internal/client"
)

func main() {
	cfg := config.Load()

	api := client.NewClient(cfg.Client.APIURL)
	model := tui.NewModel(api)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
