package maint

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ssharma/rollbook/pkg/student"
)

// ExportCSV writes the snapshot as a comma-separated table: a header row
// followed by one row per record, with the name quoted. The output is derived
// purely from the snapshot; the store is not touched.
func (m *Manager) ExportCSV(snapshot []*student.Record) error {
	f, err := os.Create(m.config.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}

	header := append([]string{"Roll", "Name"}, student.Subjects[:]...)
	header = append(header, "Total", "Percentage", "Grade")
	fmt.Fprintln(f, strings.Join(header, ","))

	for _, r := range snapshot {
		fmt.Fprintf(f, "%d,%q", r.Roll, r.Name)
		for _, mark := range r.Marks {
			fmt.Fprintf(f, ",%.2f", mark)
		}
		fmt.Fprintf(f, ",%.2f,%.2f,%s\n", r.Total, r.Percentage, r.Grade)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file: %w", err)
	}
	return nil
}

// ExportReport writes the snapshot as a human-readable report: a timestamped
// header followed by one block per record.
func (m *Manager) ExportReport(snapshot []*student.Record, now time.Time) error {
	f, err := os.Create(m.config.ReportPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	fmt.Fprintf(f, "Student Report Generated on %s\n\n", now.Format(time.ANSIC))
	for _, r := range snapshot {
		fmt.Fprintf(f, "Roll: %d\nName: %s\n", r.Roll, r.Name)
		for i, mark := range r.Marks {
			fmt.Fprintf(f, "%s: %.2f\n", student.Subjects[i], mark)
		}
		fmt.Fprintf(f, "Total: %.2f\nPercentage: %.2f\nGrade: %s\n-----------------\n",
			r.Total, r.Percentage, r.Grade)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}

// Export produces both export artifacts from one snapshot.
func (m *Manager) Export(snapshot []*student.Record) error {
	if err := m.ExportCSV(snapshot); err != nil {
		return err
	}
	return m.ExportReport(snapshot, time.Now())
}
