package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Overwrite the record file from the backup",
	Long: `Copy the backup byte for byte over the live record file. This is
destructive and asks for confirmation unless --yes is passed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}
		if !confirm("Restore from backup? This will overwrite current records.") {
			fmt.Println("Restore cancelled.")
			return nil
		}
		if err := manager.Restore(); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		fmt.Println("Restore complete.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
