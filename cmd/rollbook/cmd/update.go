package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/query"
	"github.com/ssharma/rollbook/pkg/store"
	"github.com/ssharma/rollbook/pkg/student"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <roll>",
	Short: "Update a student record",
	Long: `Update the name and/or any subset of marks for a record. Flags that
are not passed leave the corresponding field unchanged.

Examples:
  rollbook update 7 --name "Ada King"
  rollbook update 7 --science 92.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireRecordManager(); err != nil {
			return err
		}

		roll, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid roll number %q", args[0])
		}

		snapshot, err := engine.Snapshot()
		if err != nil {
			return err
		}
		record, err := query.ByRoll(snapshot, roll)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("roll %d not found", roll)
			}
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		marks := [student.SubjectCount]float64{student.KeepMark, student.KeepMark, student.KeepMark}
		if cmd.Flags().Changed("math") {
			marks[0], _ = cmd.Flags().GetFloat64("math")
		}
		if cmd.Flags().Changed("science") {
			marks[1], _ = cmd.Flags().GetFloat64("science")
		}
		if cmd.Flags().Changed("english") {
			marks[2], _ = cmd.Flags().GetFloat64("english")
		}

		if err := record.ApplyUpdate(name, marks); err != nil {
			return err
		}
		if err := recordStore.OverwriteAll(snapshot); err != nil {
			return err
		}
		fmt.Printf("Updated roll %d: total %.2f, %.2f%%, grade %s\n",
			record.Roll, record.Total, record.Percentage, record.Grade)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().String("name", "", "New name (blank keeps current)")
	updateCmd.Flags().Float64("math", student.KeepMark, "New Math marks")
	updateCmd.Flags().Float64("science", student.KeepMark, "New Science marks")
	updateCmd.Flags().Float64("english", student.KeepMark, "New English marks")
}
