package maint

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssharma/rollbook/pkg/student"
)

func exportSnapshot(t *testing.T) []*student.Record {
	t.Helper()
	ada, err := student.New(1, "Ada Lovelace", [student.SubjectCount]float64{91, 88.5, 79})
	require.NoError(t, err)
	alan, err := student.New(2, "Alan Turing", [student.SubjectCount]float64{100, 97, 85})
	require.NoError(t, err)
	return []*student.Record{ada, alan}
}

func TestExportCSV(t *testing.T) {
	manager, config := newTestManager(t)

	require.NoError(t, manager.ExportCSV(exportSnapshot(t)))

	data, err := os.ReadFile(config.CSVPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Roll,Name,Math,Science,English,Total,Percentage,Grade", lines[0])
	assert.Equal(t, `1,"Ada Lovelace",91.00,88.50,79.00,258.50,86.17,A`, lines[1])
	assert.Equal(t, `2,"Alan Turing",100.00,97.00,85.00,282.00,94.00,A+`, lines[2])
}

func TestExportReport(t *testing.T) {
	manager, config := newTestManager(t)

	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	require.NoError(t, manager.ExportReport(exportSnapshot(t), now))

	data, err := os.ReadFile(config.ReportPath)
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "Student Report Generated on Sat Mar 14 09:26:53 2026")
	assert.Contains(t, report, "Roll: 1\nName: Ada Lovelace\nMath: 91.00\nScience: 88.50\nEnglish: 79.00\n")
	assert.Contains(t, report, "Total: 282.00\nPercentage: 94.00\nGrade: A+\n")
	assert.Equal(t, 2, strings.Count(report, "-----------------"))
}

func TestExport_DoesNotTouchRecordFile(t *testing.T) {
	manager, config := newTestManager(t)

	content := []byte("1|Ada Lovelace|91.00|88.50|79.00\n")
	require.NoError(t, os.WriteFile(config.RecordPath, content, 0644))

	require.NoError(t, manager.Export(exportSnapshot(t)))

	after, err := os.ReadFile(config.RecordPath)
	require.NoError(t, err)
	assert.Equal(t, content, after)
}
