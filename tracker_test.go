package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerCommitCallback(t *testing.T) {
	tr := NewTracker()

	var got []string
	var counts []int
	tr.OnCommit(func(m Move, count int) {
		got = append(got, m.Notation())
		counts = append(counts, count)
	})

	tr.ApplyMoves([]Move{R, U, Move{Face: "X"}, RPrime})
	assert.Equal(t, []string{"R", "U", "R'"}, got)
	assert.Equal(t, []int{1, 2, 3}, counts)
	assert.Equal(t, 3, tr.Count())
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := NewTracker()

	var solvedAt []int
	tr.OnSolved(func(moves int) {
		solvedAt = append(solvedAt, moves)
	})

	// Starting solved does not fire.
	tr.ApplyMoves(SexyMove)
	assert.Empty(t, solvedAt)

	for i := 1; i < 6; i++ {
		tr.ApplyMoves(SexyMove)
	}
	assert.Equal(t, []int{24}, solvedAt)
	assert.True(t, tr.IsSolved())
}

func TestTrackerTPermHistory(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves(TPerm)

	if tr.IsSolved() {
		t.Fatal("Tracker should not be solved after one T-perm")
	}
	assert.Equal(t, TPerm, tr.Moves())
	assert.Equal(t, FormatMoves(TPerm), FormatMoves(tr.Simplified()))
}

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves([]Move{F, R2})

	m, ok := tr.Undo()
	require.True(t, ok)
	assert.Equal(t, R2, m)
	assert.Equal(t, 1, tr.Count())

	m, ok = tr.Undo()
	require.True(t, ok)
	assert.Equal(t, F, m)
	assert.True(t, tr.IsSolved())

	_, ok = tr.Undo()
	assert.False(t, ok)
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))

	var last int
	tr.OnCommit(func(_ Move, count int) { last = count })
	tr.ApplyMoves([]Move{R, U, F})

	assert.Equal(t, 3, last)
	assert.Equal(t, 3, tr.Count())
	assert.Empty(t, tr.Moves())

	_, ok := tr.Undo()
	assert.False(t, ok, "nothing to undo without history")
}

func TestTrackerForExistingCube(t *testing.T) {
	c := NewCube()
	c.ApplyMove(U)
	tr := NewTrackerFor(c)

	solved := false
	tr.OnSolved(func(int) { solved = true })
	tr.ApplyMove(UPrime)

	assert.True(t, solved)
	assert.Same(t, c, tr.Cube())
	assert.Same(t, c.Store(), tr.Store())
	assert.Equal(t, c.String(), tr.CubeString())
}

// A Tracker is a valid scheduler target.
func TestTrackerAsSchedulerTarget(t *testing.T) {
	tr := NewTracker()
	s := NewScheduler(tr, WithDuration(0))
	s.Enqueue(SexyMove...)
	assert.Equal(t, 4, s.Finish())
	assert.Equal(t, SexyMove, tr.Moves())
}
