package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all student records",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}
		snapshot, err := engine.Snapshot()
		if err != nil {
			return err
		}
		renderRecords(snapshot)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
