package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/creds"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and start a session",
	Long: `Verify credentials against the credential file and save a session for
subsequent commands. The password is prompted without echo.

Examples:
  rollbook login admin
  rollbook login staff`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		session, err := credStore.Login(username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := creds.SaveSession(session, cfg.SessionPath()); err != nil {
			return err
		}
		log.Debugf("session %s saved to %s", session.ID, cfg.SessionPath())

		figure.NewFigure("rollbook", "", true).Print()
		color.Green("Login successful. Welcome %s [%s]", session.Username, session.Role)
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := creds.ClearSession(cfg.SessionPath()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
