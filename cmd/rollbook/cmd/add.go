package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/store"
	"github.com/ssharma/rollbook/pkg/student"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <roll> <name>",
	Short: "Add a student record",
	Long: `Add a new student record with the given roll number, name and subject
marks. Roll numbers are unique; adding an existing roll fails.

Examples:
  rollbook add 7 "Ada Lovelace" --math 91 --science 88.5 --english 79
  rollbook add 12 "Alan Turing" --math 100 --science 97 --english 85`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireRecordManager(); err != nil {
			return err
		}

		roll, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid roll number %q", args[0])
		}

		math, _ := cmd.Flags().GetFloat64("math")
		science, _ := cmd.Flags().GetFloat64("science")
		english, _ := cmd.Flags().GetFloat64("english")

		record, err := student.New(roll, args[1], [student.SubjectCount]float64{math, science, english})
		if err != nil {
			return err
		}

		exists, err := recordStore.Exists(roll)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrDuplicateRoll
		}

		if err := recordStore.Append(record); err != nil {
			return err
		}
		fmt.Printf("Added %s (roll %d): total %.2f, %.2f%%, grade %s\n",
			record.Name, record.Roll, record.Total, record.Percentage, record.Grade)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().Float64("math", 0, "Marks for Math (0-100)")
	addCmd.Flags().Float64("science", 0, "Marks for Science (0-100)")
	addCmd.Flags().Float64("english", 0, "Marks for English (0-100)")
	addCmd.MarkFlagRequired("math")
	addCmd.MarkFlagRequired("science")
	addCmd.MarkFlagRequired("english")
}
