package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <roll>",
	Short: "Delete a student record",
	Long: `Remove the record with the given roll number. Removal is physical:
the file is rewritten without the record.

With --all, every record is removed instead; that requires ADMIN and a
confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if all {
			if _, err := requireAdmin(); err != nil {
				return err
			}
			if !confirm("Are you sure you want to DELETE ALL STUDENT RECORDS?") {
				fmt.Println("Operation cancelled.")
				return nil
			}
			if err := recordStore.Clear(); err != nil {
				return err
			}
			fmt.Println("All records deleted.")
			return nil
		}

		if _, err := requireRecordManager(); err != nil {
			return err
		}
		if len(args) != 1 {
			return fmt.Errorf("specify a roll number or --all")
		}
		roll, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid roll number %q", args[0])
		}

		snapshot, err := engine.Snapshot()
		if err != nil {
			return err
		}
		kept := snapshot[:0]
		found := false
		for _, r := range snapshot {
			if r.Roll == roll {
				found = true
				continue
			}
			kept = append(kept, r)
		}
		if !found {
			return fmt.Errorf("roll %d not found", roll)
		}
		if err := recordStore.OverwriteAll(kept); err != nil {
			return err
		}
		fmt.Printf("Deleted roll %d.\n", roll)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Bool("all", false, "Delete every record (ADMIN only)")
}
