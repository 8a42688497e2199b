package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("gocube: invalid move notation")
	ErrInvalidFacelets = errors.New("gocube: invalid facelet string")

	// State errors
	ErrOutOfRange       = errors.New("gocube: position out of range")
	ErrPositionOccupied = errors.New("gocube: position already occupied")

	// ErrCorruptState means a store invariant no longer holds. Callers must
	// not continue rendering or applying moves after seeing it.
	ErrCorruptState = errors.New("gocube: cube state corrupted")

	// Solver errors
	ErrSolverFailed = errors.New("gocube: solver failed")
	ErrNoSolution   = errors.New("gocube: no solution found")
)
