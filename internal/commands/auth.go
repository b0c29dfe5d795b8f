package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"erpx/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the ERP server",
	Long:  "Authenticate with the ERP server and persist the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sess, err := newSession()
		if err != nil {
			return err
		}

		sess.Bootstrap()
		if sess.IsAuthenticated() {
			// Replace the existing session
			sess.Logout()
		}

		var username string
		fmt.Print("Username: ")
		fmt.Scanln(&username)

		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(uintptr(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("error reading password: %w", err)
		}
		fmt.Println() // Add a newline after password input

		user, err := sess.Login(username, string(passwordBytes))
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		globalConfig.UserID = user.ID
		globalConfig.Username = user.Username
		globalConfig.Email = user.Email

		configPath, err := config.DefaultPath()
		if err == nil {
			if err := globalConfig.Save(configPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
			}
		}

		fmt.Printf("Successfully logged in as %s (%s)\n", user.Username, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from the ERP server",
	Long:  "Remove the saved session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sess, err := newSession()
		if err != nil {
			return err
		}

		sess.Bootstrap()
		sess.Logout()

		globalConfig.UserID = 0
		globalConfig.Username = ""
		globalConfig.Email = ""

		configPath, err := config.DefaultPath()
		if err == nil {
			if err := globalConfig.Save(configPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
			}
		}

		fmt.Println("Successfully logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current user information",
	Long:  "Display information about the currently logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sess, err := newSession()
		if err != nil {
			return err
		}

		sess.Bootstrap()
		if !sess.IsAuthenticated() {
			fmt.Println("You are not logged in")
			return nil
		}

		user := sess.CurrentUser()
		fmt.Printf("Logged in as: %s\n", user.Username)
		fmt.Printf("Email: %s\n", user.Email)
		fmt.Printf("Role: %s\n", user.Role)
		fmt.Printf("Server: %s\n", globalConfig.ServerURL)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
