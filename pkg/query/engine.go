package query

import (
	"sort"
	"strings"

	"github.com/ssharma/rollbook/pkg/store"
	"github.com/ssharma/rollbook/pkg/student"
)

// Engine runs searches and sorts over an in-memory snapshot of all records.
// Reads never mutate the store; persisting a sorted order is a separate,
// explicit step.
type Engine struct {
	store *store.RecordStore
}

// NewEngine creates a query engine over the given record store.
func NewEngine(s *store.RecordStore) *Engine {
	return &Engine{store: s}
}

// Snapshot loads all records from the store at one point in time.
func (e *Engine) Snapshot() ([]*student.Record, error) {
	return e.store.LoadAll()
}

// PersistOrder overwrites the store with the snapshot in its current order.
// Callers confirm before invoking; sorts never persist automatically.
func (e *Engine) PersistOrder(snapshot []*student.Record) error {
	return e.store.OverwriteAll(snapshot)
}

// ByName returns every record whose name contains the query as a
// case-insensitive substring. An empty query matches everything.
func ByName(snapshot []*student.Record, query string) []*student.Record {
	query = strings.ToLower(query)
	var matches []*student.Record
	for _, r := range snapshot {
		if strings.Contains(strings.ToLower(r.Name), query) {
			matches = append(matches, r)
		}
	}
	return matches
}

// ByRoll returns the record with the given roll number, or ErrNotFound.
// Rolls are unique, so there is at most one match.
func ByRoll(snapshot []*student.Record, roll int) (*student.Record, error) {
	for _, r := range snapshot {
		if r.Roll == roll {
			return r, nil
		}
	}
	return nil, store.ErrNotFound
}

// ByPercentageRange returns every record whose percentage lies in [lo, hi],
// inclusive on both ends. Crossed bounds are not validated; they simply
// produce an empty result.
func ByPercentageRange(snapshot []*student.Record, lo, hi float64) []*student.Record {
	var matches []*student.Record
	for _, r := range snapshot {
		if r.Percentage >= lo && r.Percentage <= hi {
			matches = append(matches, r)
		}
	}
	return matches
}

// ByGrade returns every record whose grade equals the query, compared
// case-insensitively against the literal grade token.
func ByGrade(snapshot []*student.Record, grade string) []*student.Record {
	var matches []*student.Record
	for _, r := range snapshot {
		if strings.EqualFold(r.Grade, grade) {
			matches = append(matches, r)
		}
	}
	return matches
}

// SortKey selects one of the supported sort orders.
type SortKey string

const (
	SortRollAsc   SortKey = "roll"
	SortRollDesc  SortKey = "roll-desc"
	SortName      SortKey = "name"
	SortTotalDesc SortKey = "total-desc"
)

// SortKeys lists the supported sort orders.
func SortKeys() []SortKey {
	return []SortKey{SortRollAsc, SortRollDesc, SortName, SortTotalDesc}
}

// Sort orders the snapshot in place by the given key. All orders are stable:
// records that compare equal keep their original relative order.
func Sort(snapshot []*student.Record, key SortKey) error {
	var less func(i, j int) bool
	switch key {
	case SortRollAsc:
		less = func(i, j int) bool { return snapshot[i].Roll < snapshot[j].Roll }
	case SortRollDesc:
		less = func(i, j int) bool { return snapshot[i].Roll > snapshot[j].Roll }
	case SortName:
		less = func(i, j int) bool {
			return strings.ToLower(snapshot[i].Name) < strings.ToLower(snapshot[j].Name)
		}
	case SortTotalDesc:
		less = func(i, j int) bool { return snapshot[i].Total > snapshot[j].Total }
	default:
		return &store.StoreError{Message: "unsupported sort key: " + string(key)}
	}
	sort.SliceStable(snapshot, less)
	return nil
}
