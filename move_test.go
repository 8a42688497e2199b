package gocube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"U'", UPrime},
		{"F2", F2},
		{" B ", B},
		{"L'", LPrime},
		{"D2", D2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "R''", "M", "U2x", "r", "l'", "F2'", "U`"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", in)
	}
}

func TestParseMoves(t *testing.T) {
	moves, skipped := ParseMoves("R U  R' X U' Q2")
	assert.Equal(t, []Move{R, U, RPrime, UPrime}, moves)
	assert.Equal(t, []string{"X", "Q2"}, skipped)

	moves, skipped = ParseMoves("   ")
	assert.Empty(t, moves)
	assert.Empty(t, skipped)
}

func TestParseMovesStrict(t *testing.T) {
	moves, err := ParseMovesStrict("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, SexyMove, moves)

	_, err = ParseMovesStrict("R U X")
	require.ErrorIs(t, err, ErrInvalidNotation)
	assert.Contains(t, err.Error(), "token 3")

	for _, in := range []string{"r", "R2'", "R`"} {
		moves, err := ParseMovesStrict(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", in)
		assert.Nil(t, moves)
	}
}

func TestLowercaseFaceIsNotAFaceTurn(t *testing.T) {
	c := NewCube()
	moves, err := c.ApplyNotation("r u' b2")
	require.NoError(t, err)
	assert.Empty(t, moves)
	assert.True(t, c.IsSolved())

	strict := NewCube(WithStrictMoves(true))
	_, err = strict.ApplyNotation("R r")
	require.ErrorIs(t, err, ErrInvalidNotation)
	assert.True(t, strict.IsSolved(), "a rejected sequence applies nothing")
}

func TestFormatMoves(t *testing.T) {
	assert.Equal(t, "R U R' U'", FormatMoves(SexyMove))
	assert.Equal(t, "", FormatMoves(nil))

	for _, m := range AllMoves {
		back, err := ParseMove(m.Notation())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
}

func TestMoveInverse(t *testing.T) {
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, R, RPrime.Inverse())
	assert.Equal(t, R2, R2.Inverse())
	for _, m := range AllMoves {
		assert.Zero(t, (m.Quarters()+m.Inverse().Quarters())%4, "%s", m)
	}
}

func TestMoveValid(t *testing.T) {
	for _, m := range AllMoves {
		assert.True(t, m.Valid(), "%s", m)
	}
	assert.False(t, Move{}.Valid())
	assert.False(t, Move{Face: "X", Turn: CW}.Valid())
	assert.False(t, Move{Face: FaceR, Turn: 0}.Valid())
}

func TestMoveMerge(t *testing.T) {
	tests := []struct {
		a, b      Move
		want      Move
		cancelled bool
		ok        bool
	}{
		{R, R, R2, false, true},
		{R, RPrime, Move{}, true, true},
		{R2, R, RPrime, false, true},
		{R2, R2, Move{}, true, true},
		{UPrime, UPrime, U2, false, true},
		{U2, UPrime, U, false, true},
		{R, U, Move{}, false, false},
	}
	for _, tt := range tests {
		got, cancelled, ok := tt.a.Merge(tt.b)
		assert.Equal(t, tt.ok, ok, "%s %s", tt.a, tt.b)
		assert.Equal(t, tt.cancelled, cancelled, "%s %s", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%s %s", tt.a, tt.b)
	}
}

func TestMergeKeepsLaterTimestamp(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Second)
	got, _, ok := R.WithTime(t0).Merge(R.WithTime(t1))
	require.True(t, ok)
	assert.Equal(t, t1, got.Time)
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"R R", "R2"},
		{"R R R", "R'"},
		{"R R'", ""},
		{"R U U' R'", ""},
		{"R U U R", "R U2 R"},
		{"F F F F", ""},
		{"L", "L"},
	}
	for _, tt := range tests {
		in, err := ParseMovesStrict(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, FormatMoves(Simplify(in)), tt.in)
	}
}

// Simplifying a sequence never changes what it does to the cube.
func TestSimplifyPreservesEffect(t *testing.T) {
	seq, err := ParseMovesStrict("R R U U' F2 F2 D D D L' L' B B' R")
	require.NoError(t, err)

	a := NewCube()
	a.Apply(seq...)
	b := NewCube()
	b.Apply(Simplify(seq)...)
	assert.Equal(t, a.Facelets(), b.Facelets())
}
