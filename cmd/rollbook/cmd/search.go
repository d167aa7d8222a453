package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/query"
	"github.com/ssharma/rollbook/pkg/store"
	"github.com/ssharma/rollbook/pkg/student"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search student records",
	Long: `Search records by name substring, roll number, percentage range or
grade. Exactly one search mode is used per invocation.

Examples:
  rollbook search --name ada
  rollbook search --roll 7
  rollbook search --min 60 --max 80
  rollbook search --grade a+`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := activeSession(); err != nil {
			return err
		}
		snapshot, err := engine.Snapshot()
		if err != nil {
			return err
		}

		var matches []*student.Record
		switch {
		case cmd.Flags().Changed("roll"):
			roll, _ := cmd.Flags().GetInt("roll")
			r, err := query.ByRoll(snapshot, roll)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					fmt.Println("No matching records found.")
					return nil
				}
				return err
			}
			matches = []*student.Record{r}
		case cmd.Flags().Changed("name"):
			name, _ := cmd.Flags().GetString("name")
			matches = query.ByName(snapshot, name)
		case cmd.Flags().Changed("grade"):
			grade, _ := cmd.Flags().GetString("grade")
			matches = query.ByGrade(snapshot, grade)
		case cmd.Flags().Changed("min") || cmd.Flags().Changed("max"):
			lo, _ := cmd.Flags().GetFloat64("min")
			hi, _ := cmd.Flags().GetFloat64("max")
			matches = query.ByPercentageRange(snapshot, lo, hi)
		default:
			return fmt.Errorf("specify one of --name, --roll, --grade or --min/--max")
		}

		if len(matches) == 0 {
			fmt.Println("No matching records found.")
			return nil
		}
		renderRecords(matches)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("name", "", "Case-insensitive name substring")
	searchCmd.Flags().Int("roll", 0, "Exact roll number")
	searchCmd.Flags().String("grade", "", "Exact grade token (case-insensitive)")
	searchCmd.Flags().Float64("min", 0, "Lower percentage bound, inclusive")
	searchCmd.Flags().Float64("max", 100, "Upper percentage bound, inclusive")
}
