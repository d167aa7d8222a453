package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records to CSV and a plain-text report",
	Long: `Write the current records to two artifacts in the data directory: a
comma-separated table and a timestamped human-readable report. Exports are
derived purely from a snapshot; the record file is not modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}

		snapshot, err := engine.Snapshot()
		if err != nil {
			return err
		}
		if len(snapshot) == 0 {
			fmt.Println("No records to export.")
			return nil
		}

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Exporting records..."
		s.Start()
		err = manager.Export(snapshot)
		s.Stop()
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d records to %s and %s\n", len(snapshot), cfg.CSVPath(), cfg.ReportPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
