package gocube

import (
	"fmt"
	"strings"
	"time"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists every face in facelet-string block order.
var Faces = []Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Axis is a world axis. X points right, Y up and Z towards the viewer.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Axis returns the axis normal to the face.
func (f Face) Axis() Axis {
	switch f {
	case FaceR, FaceL:
		return AxisX
	case FaceU, FaceD:
		return AxisY
	default:
		return AxisZ
	}
}

// Layer returns the coordinate shared by the face's nine cubies along its
// axis: +1 for R, U and F, -1 for L, D and B.
func (f Face) Layer() int {
	switch f {
	case FaceL, FaceD, FaceB:
		return -1
	default:
		return 1
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	switch f {
	case FaceR, FaceL, FaceU, FaceD, FaceF, FaceB:
		return true
	}
	return false
}

// Direction returns the outward world direction of the face.
func (f Face) Direction() Direction {
	return directionOf(f.Axis(), f.Layer())
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move with face, turn direction, and optional timestamp.
type Move struct {
	Face Face      // Which face to turn
	Turn Turn      // Direction and amount
	Time time.Time // When the move occurred (optional)
}

// Valid reports whether the move names a real face and turn.
func (m Move) Valid() bool {
	if !m.Face.Valid() {
		return false
	}
	return m.Turn == CW || m.Turn == CCW || m.Turn == Double
}

// Axis returns the rotation axis of the move.
func (m Move) Axis() Axis {
	return m.Face.Axis()
}

// Layer returns the layer coordinate (+1 or -1) the move rotates.
func (m Move) Layer() int {
	return m.Face.Layer()
}

// Quarters returns the signed number of quarter turns about the positive
// axis, using the right-hand rule. Clockwise is judged looking at the face
// from outside the cube, so a clockwise turn of a +1 layer is -1 quarter and
// a clockwise turn of a -1 layer is +1. Half turns are always +2.
func (m Move) Quarters() int {
	switch m.Turn {
	case CW:
		return -m.Layer()
	case CCW:
		return m.Layer()
	case Double:
		return 2
	default:
		return 0
	}
}

// TargetAngle returns the final animation angle in degrees about the
// positive axis.
func (m Move) TargetAngle() float64 {
	return float64(m.Quarters()) * 90
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2. Only uppercase faces and the suffixes
// ', 2 or none are accepted.
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Merge combines two same-face moves. ok is false when the faces differ;
// cancelled is true when the two moves undo each other.
func (m Move) Merge(other Move) (merged Move, cancelled, ok bool) {
	if m.Face != other.Face {
		return Move{}, false, false
	}

	// Quarter turns mod 4, with 2 and -2 both meaning a half turn.
	q := (int(m.Turn) + int(other.Turn)) % 4
	if q < 0 {
		q += 4
	}

	merged = Move{Face: m.Face, Time: other.Time}
	switch q {
	case 0:
		return Move{}, true, true
	case 1:
		merged.Turn = CW
	case 2:
		merged.Turn = Double
	case 3:
		merged.Turn = CCW
	}
	return merged, false, true
}

// Simplify merges adjacent same-face moves.
// For example: R R becomes R2, R R R becomes R', R R' cancels out.
func Simplify(moves []Move) []Move {
	if len(moves) <= 1 {
		return moves
	}

	result := make([]Move, 0, len(moves))
	for _, move := range moves {
		if len(result) == 0 {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		merged, cancelled, ok := last.Merge(move)
		switch {
		case !ok:
			result = append(result, move)
		case cancelled:
			result = result[:len(result)-1]
		default:
			*last = merged
		}
	}

	return result
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2. Only uppercase faces and the suffixes
// ', 2 or none are accepted.
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Face letters are case-sensitive; lowercase means a wide turn.
	face := Face(s[:1])
	if !face.Valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	switch s[1:] {
	case "":
	case "'":
		turn = CCW
	case "2":
		turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Invalid moves are skipped and returned in skipped so callers can log them.
func ParseMoves(s string) (moves []Move, skipped []string) {
	parts := strings.Fields(s)
	moves = make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			skipped = append(skipped, part)
			continue
		}
		moves = append(moves, move)
	}

	return moves, skipped
}

// ParseMovesStrict parses a space-separated sequence of moves and fails on
// the first malformed token.
func ParseMovesStrict(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
