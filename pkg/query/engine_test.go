package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssharma/rollbook/pkg/store"
	"github.com/ssharma/rollbook/pkg/student"
)

// pct builds a record whose percentage equals the given value by setting all
// three marks to it.
func pct(t *testing.T, roll int, name string, percentage float64) *student.Record {
	t.Helper()
	r, err := student.New(roll, name, [student.SubjectCount]float64{percentage, percentage, percentage})
	require.NoError(t, err)
	return r
}

func TestByName(t *testing.T) {
	snapshot := []*student.Record{
		pct(t, 1, "Ada Lovelace", 80),
		pct(t, 2, "Alan Turing", 70),
		pct(t, 3, "Grace Hopper", 60),
	}

	t.Run("case-insensitive substring", func(t *testing.T) {
		matches := ByName(snapshot, "LOVE")
		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].Roll)
	})

	t.Run("substring anywhere", func(t *testing.T) {
		matches := ByName(snapshot, "a")
		assert.Len(t, matches, 3)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Len(t, ByName(snapshot, ""), 3)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, ByName(snapshot, "babbage"))
	})
}

func TestByRoll(t *testing.T) {
	snapshot := []*student.Record{pct(t, 1, "One", 50), pct(t, 2, "Two", 60)}

	r, err := ByRoll(snapshot, 2)
	require.NoError(t, err)
	assert.Equal(t, "Two", r.Name)

	_, err = ByRoll(snapshot, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestByPercentageRange(t *testing.T) {
	snapshot := []*student.Record{
		pct(t, 1, "A", 55),
		pct(t, 2, "B", 60),
		pct(t, 3, "C", 75),
		pct(t, 4, "D", 80),
		pct(t, 5, "E", 85),
	}

	t.Run("inclusive on both ends", func(t *testing.T) {
		matches := ByPercentageRange(snapshot, 60, 80)
		require.Len(t, matches, 3)
		assert.Equal(t, 2, matches[0].Roll)
		assert.Equal(t, 3, matches[1].Roll)
		assert.Equal(t, 4, matches[2].Roll)
	})

	t.Run("crossed bounds produce empty result", func(t *testing.T) {
		assert.Empty(t, ByPercentageRange(snapshot, 80, 60))
	})
}

func TestByGrade(t *testing.T) {
	snapshot := []*student.Record{
		pct(t, 1, "Top", 95),    // A+
		pct(t, 2, "Mid", 72),    // B
		pct(t, 3, "Top2", 91.5), // A+
	}

	t.Run("case-insensitive literal token", func(t *testing.T) {
		matches := ByGrade(snapshot, "a+")
		require.Len(t, matches, 2)
		assert.Equal(t, 1, matches[0].Roll)
		assert.Equal(t, 3, matches[1].Roll)
	})

	t.Run("no partial grade matching", func(t *testing.T) {
		matches := ByGrade(snapshot, "A")
		assert.Empty(t, matches)
	})
}

func TestSort(t *testing.T) {
	build := func() []*student.Record {
		return []*student.Record{
			pct(t, 3, "charlie", 50),
			pct(t, 1, "Bravo", 70),
			pct(t, 2, "alpha", 60),
		}
	}

	t.Run("roll ascending", func(t *testing.T) {
		s := build()
		require.NoError(t, Sort(s, SortRollAsc))
		assert.Equal(t, []int{1, 2, 3}, rolls(s))
	})

	t.Run("roll descending", func(t *testing.T) {
		s := build()
		require.NoError(t, Sort(s, SortRollDesc))
		assert.Equal(t, []int{3, 2, 1}, rolls(s))
	})

	t.Run("name case-insensitive", func(t *testing.T) {
		s := build()
		require.NoError(t, Sort(s, SortName))
		assert.Equal(t, []int{2, 1, 3}, rolls(s))
	})

	t.Run("total descending", func(t *testing.T) {
		s := build()
		require.NoError(t, Sort(s, SortTotalDesc))
		assert.Equal(t, []int{1, 2, 3}, rolls(s))
	})

	t.Run("total ties keep original relative order", func(t *testing.T) {
		s := []*student.Record{
			pct(t, 10, "First Equal", 65),
			pct(t, 20, "Higher", 90),
			pct(t, 11, "Second Equal", 65),
		}
		require.NoError(t, Sort(s, SortTotalDesc))
		assert.Equal(t, []int{20, 10, 11}, rolls(s))
	})

	t.Run("unsupported key", func(t *testing.T) {
		assert.Error(t, Sort(build(), SortKey("bogus")))
	})
}

func TestEngine_SnapshotAndPersistOrder(t *testing.T) {
	recordStore := store.NewRecordStore(store.Config{Path: t.TempDir() + "/students.txt"})
	engine := NewEngine(recordStore)

	require.NoError(t, recordStore.Append(pct(t, 2, "Second", 60)))
	require.NoError(t, recordStore.Append(pct(t, 1, "First", 80)))

	snapshot, err := engine.Snapshot()
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	require.NoError(t, Sort(snapshot, SortRollAsc))
	require.NoError(t, engine.PersistOrder(snapshot))

	reloaded, err := engine.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, rolls(reloaded))
}

func rolls(records []*student.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Roll
	}
	return out
}
