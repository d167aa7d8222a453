package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}

		snapshot, err := engine.Snapshot()
		if err != nil {
			return err
		}
		summary, err := stats.Aggregate(snapshot)
		if err != nil {
			if errors.Is(err, stats.ErrEmptyStore) {
				fmt.Println("No records.")
				return nil
			}
			return err
		}

		fmt.Printf("Total Students: %d\n", summary.Count)
		fmt.Printf("Average Percentage: %.2f\n", summary.MeanPercentage)
		fmt.Printf("Highest: %.2f (%s, Roll %d)\n", summary.Max.Percentage, summary.Max.Name, summary.Max.Roll)
		fmt.Printf("Lowest: %.2f (%s, Roll %d)\n", summary.Min.Percentage, summary.Min.Name, summary.Min.Roll)
		fmt.Printf("Pass Count: %d\n", summary.Pass)
		fmt.Printf("Fail Count: %d\n", summary.Fail)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
