package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/query"
)

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort <key>",
	Short: "Display records in sorted order",
	Long: `Sort the records by one of: roll, roll-desc, name, total-desc. Sorting
only changes the display; pass --save to persist the new order to the record
file.

Examples:
  rollbook sort total-desc
  rollbook sort name --save`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}

		snapshot, err := engine.Snapshot()
		if err != nil {
			return err
		}
		if len(snapshot) == 0 {
			fmt.Println("No records to sort.")
			return nil
		}

		if err := query.Sort(snapshot, query.SortKey(args[0])); err != nil {
			return err
		}
		renderRecords(snapshot)

		save, _ := cmd.Flags().GetBool("save")
		if save {
			if _, err := requireRecordManager(); err != nil {
				return err
			}
			if err := engine.PersistOrder(snapshot); err != nil {
				return err
			}
			fmt.Println("Sorted order saved.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().Bool("save", false, "Persist the sorted order to the record file")
}
