package gocube

import (
	"fmt"
	"image/color"
	"log/slog"
)

// rotate turns v by quarters×90° about the positive axis a (right-hand rule).
func rotate(v Pos, a Axis, quarters int) Pos {
	q := ((quarters % 4) + 4) % 4
	for i := 0; i < q; i++ {
		switch a {
		case AxisX:
			v = Pos{v.X, -v.Z, v.Y}
		case AxisY:
			v = Pos{v.Z, v.Y, -v.X}
		case AxisZ:
			v = Pos{-v.Y, v.X, v.Z}
		}
	}
	return v
}

// dirPerm[axis][q][d] is where the slot facing d ends up after q positive
// quarter turns about axis.
var dirPerm = buildDirPerm()

func buildDirPerm() [3][4][6]Direction {
	var perm [3][4][6]Direction
	for a := AxisX; a <= AxisZ; a++ {
		for q := 0; q < 4; q++ {
			for _, d := range Directions {
				nd, ok := directionFromVector(rotate(d.Vector(), a, q))
				if !ok {
					panic(fmt.Sprintf("gocube: rotation of %v about %v is not a unit vector", d, a))
				}
				perm[a][q][d] = nd
			}
		}
	}
	return perm
}

func rotateColors(colors [6]color.RGBA, a Axis, quarters int) [6]color.RGBA {
	q := ((quarters % 4) + 4) % 4
	var out [6]color.RGBA
	for _, d := range Directions {
		out[dirPerm[a][q][d]] = colors[d]
	}
	return out
}

// Layer returns the nine cubies currently in the face's layer, in position
// index order.
func Layer(store *Store, face Face) []*Cubie {
	if !face.Valid() {
		return nil
	}
	axis, layer := face.Axis(), face.Layer()
	group := make([]*Cubie, 0, 9)
	for _, c := range store.slots {
		if c != nil && c.pos.Coord(axis) == layer {
			group = append(group, c)
		}
	}
	return group
}

// Apply rotates the move's layer: positions turn about the move axis and
// each cubie's color slots are relabeled by the same rotation, so a color
// keeps pointing the way its sticker points. Invalid moves are ignored.
func Apply(store *Store, m Move) {
	if !m.Valid() {
		return
	}

	axis, q := m.Axis(), m.Quarters()
	group := Layer(store, m.Face)
	targets := make([]Pos, len(group))
	for i, c := range group {
		targets[i] = rotate(c.pos, axis, q)
		c.colors = rotateColors(c.colors, axis, q)
	}
	store.relocate(group, targets)
}

// ApplyMoves applies each move in order.
func ApplyMoves(store *Store, moves []Move) {
	for _, m := range moves {
		Apply(store, m)
	}
}

// ApplyNotation parses and applies a move sequence. In lenient mode malformed
// tokens are skipped and logged. In strict mode every token is checked first
// and the store is left untouched on error.
func ApplyNotation(store *Store, s string, strict bool, logger *slog.Logger) ([]Move, error) {
	if strict {
		moves, err := ParseMovesStrict(s)
		if err != nil {
			return nil, err
		}
		ApplyMoves(store, moves)
		return moves, nil
	}

	moves, skipped := ParseMoves(s)
	if len(skipped) > 0 && logger != nil {
		logger.Warn("skipping malformed move tokens", "tokens", skipped)
	}
	ApplyMoves(store, moves)
	return moves, nil
}
