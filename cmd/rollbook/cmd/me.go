package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssharma/rollbook/pkg/query"
	"github.com/ssharma/rollbook/pkg/store"
	"github.com/ssharma/rollbook/pkg/student"
)

// meCmd represents the me command
var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the logged-in student's own record",
	Long: `Look up the record belonging to the current session: by roll number
when the username is numeric, otherwise by exact name match.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := activeSession()
		if err != nil {
			return err
		}

		snapshot, err := engine.Snapshot()
		if err != nil {
			return err
		}

		var match *student.Record
		if roll, convErr := strconv.Atoi(session.Username); convErr == nil {
			match, err = query.ByRoll(snapshot, roll)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
		} else {
			for _, r := range snapshot {
				if strings.EqualFold(r.Name, session.Username) {
					match = r
					break
				}
			}
		}

		if match == nil {
			fmt.Println("No record found for you.")
			return nil
		}
		renderRecords([]*student.Record{match})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
}
