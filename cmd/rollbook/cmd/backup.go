package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the record file to the backup path",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}
		if err := manager.Backup(); err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		fmt.Printf("Backup saved to %s\n", cfg.BackupPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
