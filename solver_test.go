package gocube

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrambledFacelets(t *testing.T, notation string) string {
	t.Helper()
	c := NewCube()
	_, err := c.ApplyNotation(notation)
	require.NoError(t, err)
	return c.Facelets()
}

func TestSolveParsesSolution(t *testing.T) {
	state := scrambledFacelets(t, "R U")

	var gotFacelets, gotPattern string
	solver := SolverFunc(func(_ context.Context, facelets, pattern string) (string, error) {
		gotFacelets, gotPattern = facelets, pattern
		return "U' R'\n", nil
	})

	moves, err := Solve(context.Background(), solver, state, "")
	require.NoError(t, err)
	assert.Equal(t, []Move{UPrime, RPrime}, moves)
	assert.Equal(t, state, gotFacelets)
	assert.Empty(t, gotPattern)

	c, err := NewCubeFromFacelets(state)
	require.NoError(t, err)
	c.Apply(moves...)
	assert.True(t, c.IsSolved())
}

func TestSolvePassesUppercaseFacelets(t *testing.T) {
	state := scrambledFacelets(t, "R")
	pattern := scrambledFacelets(t, "U")

	var gotFacelets, gotPattern string
	solver := SolverFunc(func(_ context.Context, facelets, pattern string) (string, error) {
		gotFacelets, gotPattern = facelets, pattern
		return "R' U", nil
	})

	moves, err := Solve(context.Background(), solver, strings.ToLower(state), strings.ToLower(pattern))
	require.NoError(t, err)
	assert.Equal(t, []Move{RPrime, U}, moves)
	assert.Equal(t, state, gotFacelets)
	assert.Equal(t, pattern, gotPattern)

	moves, err = Solve(context.Background(), solver, strings.ToLower(SolvedFacelets), "")
	require.NoError(t, err)
	assert.Empty(t, moves, "lowercase solved input is already at the goal")
}

func TestSolveWrapsSolverFailure(t *testing.T) {
	boom := errors.New("no table")
	solver := SolverFunc(func(context.Context, string, string) (string, error) {
		return "", boom
	})

	_, err := Solve(context.Background(), solver, scrambledFacelets(t, "F"), "")
	require.ErrorIs(t, err, ErrSolverFailed)
	assert.ErrorIs(t, err, boom)
}

func TestSolveRejectsBadSolution(t *testing.T) {
	solver := SolverFunc(func(context.Context, string, string) (string, error) {
		return "R U Error", nil
	})

	_, err := Solve(context.Background(), solver, scrambledFacelets(t, "F"), "")
	require.ErrorIs(t, err, ErrSolverFailed)
	assert.ErrorIs(t, err, ErrInvalidNotation)
}

func TestSolveValidatesInput(t *testing.T) {
	called := false
	solver := SolverFunc(func(context.Context, string, string) (string, error) {
		called = true
		return "", nil
	})

	_, err := Solve(context.Background(), solver, "UUU", "")
	assert.ErrorIs(t, err, ErrInvalidFacelets)

	_, err = Solve(context.Background(), solver, SolvedFacelets, "nope")
	assert.ErrorIs(t, err, ErrInvalidFacelets)
	assert.False(t, called)
}

func TestSolveAtGoalSkipsSolver(t *testing.T) {
	solver := SolverFunc(func(context.Context, string, string) (string, error) {
		t.Fatal("solver should not be called")
		return "", nil
	})

	moves, err := Solve(context.Background(), solver, SolvedFacelets, "")
	require.NoError(t, err)
	assert.Empty(t, moves)

	pattern := scrambledFacelets(t, "D2")
	moves, err = Solve(context.Background(), solver, pattern, pattern)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestSolvePassesPattern(t *testing.T) {
	pattern := scrambledFacelets(t, "L")
	solver := SolverFunc(func(_ context.Context, facelets, p string) (string, error) {
		assert.Equal(t, SolvedFacelets, facelets)
		assert.Equal(t, pattern, p)
		return "L", nil
	})

	moves, err := Solve(context.Background(), solver, SolvedFacelets, pattern)
	require.NoError(t, err)
	assert.Equal(t, []Move{L}, moves)
}
