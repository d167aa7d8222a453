package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/ssharma/rollbook/pkg/student"
)

// renderRecords displays records in table format.
func renderRecords(records []*student.Record) {
	if len(records) == 0 {
		fmt.Println("No student records.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Roll\tName\t%s\tTotal\tPercent\tGrade\n", strings.Join(student.Subjects[:], "\t"))
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s", r.Roll, r.Name)
		for _, m := range r.Marks {
			fmt.Fprintf(w, "\t%.2f", m)
		}
		fmt.Fprintf(w, "\t%.2f\t%.2f\t%s\n", r.Total, r.Percentage, r.Grade)
	}
}

// confirm asks a y/n question unless --yes was passed.
func confirm(prompt string) bool {
	if flagYes {
		return true
	}
	fmt.Printf("%s (y/n): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.TrimSpace(line)
	return line == "y" || line == "Y"
}

// promptPassword reads a password without echoing when stdin is a terminal,
// falling back to a plain line read otherwise.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
