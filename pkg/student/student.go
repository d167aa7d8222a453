package student

import (
	"fmt"
	"strings"
)

// SubjectCount is the fixed number of graded subjects per record.
const SubjectCount = 3

// Subjects lists the graded subjects in the order their marks are stored.
var Subjects = [SubjectCount]string{"Math", "Science", "English"}

// MaxNameLen is the longest accepted student name in bytes.
const MaxNameLen = 99

// KeepMark is the sentinel an update passes for a mark it wants to leave unchanged.
const KeepMark = -1.0

// Record is a single student record. Total, Percentage and Grade are derived
// from Marks and are recomputed on every load and before every save; they are
// never treated as authoritative input.
type Record struct {
	Roll       int
	Name       string
	Marks      [SubjectCount]float64
	Total      float64
	Percentage float64
	Grade      string
}

// New builds a record from caller-supplied roll, name and marks, validates it
// and fills in the derived fields.
func New(roll int, name string, marks [SubjectCount]float64) (*Record, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	for i, m := range marks {
		if err := ValidateMark(m); err != nil {
			return nil, fmt.Errorf("%s: %w", Subjects[i], err)
		}
	}
	r := &Record{Roll: roll, Name: name, Marks: marks}
	r.Recompute()
	return r, nil
}

// Recompute recalculates the derived fields from Marks. It is deterministic
// and performs no I/O.
func (r *Record) Recompute() {
	r.Total = 0
	for _, m := range r.Marks {
		r.Total += m
	}
	r.Percentage = r.Total / (100 * SubjectCount) * 100
	r.Grade = gradeFor(r.Percentage)
}

// ApplyUpdate overwrites Name when newName is non-blank and each mark whose
// replacement is not the KeepMark sentinel, then recomputes the derived
// fields. Out-of-range replacement marks are rejected.
func (r *Record) ApplyUpdate(newName string, marks [SubjectCount]float64) error {
	newName = strings.TrimSpace(newName)
	if newName != "" {
		if err := ValidateName(newName); err != nil {
			return err
		}
		r.Name = newName
	}
	for i, m := range marks {
		if m == KeepMark {
			continue
		}
		if err := ValidateMark(m); err != nil {
			return fmt.Errorf("%s: %w", Subjects[i], err)
		}
		r.Marks[i] = m
	}
	r.Recompute()
	return nil
}

// ValidateName checks that a name is non-empty after trimming and fits the
// fixed-width line format.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name exceeds %d characters", MaxNameLen)
	}
	return nil
}

// ValidateMark checks that a mark lies in [0,100].
func ValidateMark(mark float64) error {
	if mark < 0 || mark > 100 {
		return fmt.Errorf("mark %.2f out of range 0-100", mark)
	}
	return nil
}

// gradeFor maps a percentage onto the letter grade scale.
func gradeFor(pct float64) string {
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 50:
		return "D"
	default:
		return "F"
	}
}
