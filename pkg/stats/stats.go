// Package stats computes aggregates over a snapshot of student records.
package stats

import (
	"github.com/ssharma/rollbook/pkg/student"
)

// PassThreshold is the minimum passing percentage.
const PassThreshold = 50.0

// ErrEmptyStore is returned when statistics are requested over zero records.
var ErrEmptyStore = &StatsError{"no records to aggregate"}

// StatsError represents a statistics error.
type StatsError struct {
	Message string
}

func (e *StatsError) Error() string {
	return e.Message
}

// Summary holds the aggregates of one snapshot.
type Summary struct {
	Count          int
	MeanPercentage float64
	Max            *student.Record // first occurrence on ties
	Min            *student.Record // first occurrence on ties
	Pass           int
	Fail           int
}

// Aggregate computes the summary in a single pass. It fails with
// ErrEmptyStore on an empty snapshot so callers can report "no records"
// instead of dividing by zero.
func Aggregate(snapshot []*student.Record) (*Summary, error) {
	if len(snapshot) == 0 {
		return nil, ErrEmptyStore
	}

	s := &Summary{
		Count: len(snapshot),
		Max:   snapshot[0],
		Min:   snapshot[0],
	}
	var sum float64
	for _, r := range snapshot {
		sum += r.Percentage
		if r.Percentage > s.Max.Percentage {
			s.Max = r
		}
		if r.Percentage < s.Min.Percentage {
			s.Min = r
		}
		if r.Percentage >= PassThreshold {
			s.Pass++
		}
	}
	s.MeanPercentage = sum / float64(s.Count)
	s.Fail = s.Count - s.Pass

	return s, nil
}
