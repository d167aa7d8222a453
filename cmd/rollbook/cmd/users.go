package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/creds"
)

// usersCmd represents the users command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage credentials (ADMIN only)",
	Long:  `Add, reset the password of, or remove credential entries.`,
}

var usersAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add a credential entry",
	Long: `Append a new username/password/role entry. Usernames are not
deduplicated: on login the first matching entry in the file wins.

Examples:
  rollbook users add clerk --role staff
  rollbook users add visitor --role guest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}

		roleStr, _ := cmd.Flags().GetString("role")
		role, err := creds.ParseRole(roleStr)
		if err != nil {
			return err
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		if err := credStore.Add(args[0], password, role); err != nil {
			return err
		}
		fmt.Printf("User %s added with role %s.\n", args[0], role)
		return nil
	},
}

var usersResetCmd = &cobra.Command{
	Use:   "reset <username>",
	Short: "Reset a user's password",
	Long: `Rewrite the credential file replacing the password on every line whose
username matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}

		password, err := promptPassword("New password: ")
		if err != nil {
			return err
		}
		if err := credStore.ResetPassword(args[0], password); err != nil {
			return err
		}
		fmt.Printf("Password reset for %s.\n", args[0])
		return nil
	},
}

var usersRemoveCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Remove a user",
	Long:  `Rewrite the credential file omitting every line with the username.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}
		if err := credStore.Remove(args[0]); err != nil {
			return err
		}
		fmt.Printf("User %s removed.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersResetCmd)
	usersCmd.AddCommand(usersRemoveCmd)
	usersAddCmd.Flags().String("role", "", "Role: ADMIN, STAFF, PRINCIPAL, STUDENT or GUEST")
	usersAddCmd.MarkFlagRequired("role")
}
