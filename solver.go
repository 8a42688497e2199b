package gocube

import (
	"context"
	"fmt"
	"strings"
)

// Solver finds a move sequence that takes facelets to pattern. An empty
// pattern means the solved state.
type Solver interface {
	Solve(ctx context.Context, facelets, pattern string) (string, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, facelets, pattern string) (string, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, facelets, pattern string) (string, error) {
	return f(ctx, facelets, pattern)
}

// Solve validates the input, asks the solver for a solution and parses it.
// Solver failures are returned wrapped in ErrSolverFailed and are not
// retried. A solution with a malformed token is rejected as a whole. Input
// already at the goal returns no moves without calling the solver.
func Solve(ctx context.Context, solver Solver, facelets, pattern string) ([]Move, error) {
	if err := ValidateFacelets(facelets); err != nil {
		return nil, err
	}
	if pattern != "" {
		if err := ValidateFacelets(pattern); err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
	}

	// External solvers only read uppercase face letters.
	facelets = strings.ToUpper(facelets)
	pattern = strings.ToUpper(pattern)

	goal := pattern
	if goal == "" {
		goal = SolvedFacelets
	}
	if facelets == goal {
		return nil, nil
	}

	solution, err := solver.Solve(ctx, facelets, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolverFailed, err)
	}

	moves, err := ParseMovesStrict(strings.TrimSpace(solution))
	if err != nil {
		return nil, fmt.Errorf("%w: bad solution %q: %w", ErrSolverFailed, solution, err)
	}
	return moves, nil
}
