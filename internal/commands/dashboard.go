package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"erpx/internal/config"
	"erpx/internal/theme"
	"erpx/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long:  "Browse projects, work orders and metrics in a full-screen terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := requireSession()
		if err != nil {
			return err
		}

		configDir, err := config.DefaultDir()
		if err != nil {
			return err
		}
		themes := theme.NewController(configDir)

		model := ui.NewModel(client, sess, themes)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("error running dashboard: %w", err)
		}
		return nil
	},
}
