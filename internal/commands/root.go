package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"erpx/internal/api"
	"erpx/internal/config"
	"erpx/internal/models"
	"erpx/internal/session"
)

var globalConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "erpx",
	Short: "Terminal client for the ERP backend",
	Long: `erpx is a command-line client for the ERP system. It talks to the
backend REST API for projects, work orders, time entries and project
analytics, and ships a terminal dashboard.`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// newSession builds the API client and session controller from the global
// config directory
func newSession() (*api.Client, *session.Controller, error) {
	configDir, err := config.DefaultDir()
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("error creating config directory: %w", err)
	}

	serverURL := config.DefaultServerURL
	if globalConfig != nil && globalConfig.ServerURL != "" {
		serverURL = globalConfig.ServerURL
	}

	tokenStore := models.NewTokenStore(configDir)
	client := api.NewClient(serverURL, tokenStore)
	return client, session.NewController(client, tokenStore), nil
}

// requireSession bootstraps the session and fails when nobody is logged in
func requireSession() (*api.Client, *session.Controller, error) {
	client, sess, err := newSession()
	if err != nil {
		return nil, nil, err
	}

	sess.Bootstrap()
	if !sess.IsAuthenticated() {
		return nil, nil, fmt.Errorf("not logged in (run 'erpx login' first)")
	}

	return client, sess, nil
}

func init() {
	// Add all commands
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(workordersCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(timelogCmd)
	rootCmd.AddCommand(dashboardCmd)
}
