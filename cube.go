package gocube

import (
	"log/slog"
	"strings"
)

// Cube is a 3x3 puzzle: a cubie store painted with a palette.
//
// Facelets are read and written in the 54-character U R F D L B layout.
// Within each face block the nine cells are numbered:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Cube struct {
	store   *Store
	palette Palette
	strict  bool
	logger  *slog.Logger
}

// NewCube creates a solved cube.
func NewCube(opts ...Option) *Cube {
	cfg := newConfig(opts)
	c := &Cube{
		palette: cfg.palette,
		strict:  cfg.strictMoves,
		logger:  cfg.logger,
	}
	c.Reset()
	return c
}

// NewCubeFromFacelets creates a cube painted from a facelet string.
func NewCubeFromFacelets(facelets string, opts ...Option) (*Cube, error) {
	c := NewCube(opts...)
	if err := c.Decode(facelets); err != nil {
		return nil, err
	}
	return c, nil
}

// Store returns the underlying cubie store.
func (c *Cube) Store() *Store {
	return c.store
}

// Palette returns the cube's palette.
func (c *Cube) Palette() Palette {
	return c.palette
}

// Reset returns every cubie home and paints the solved state.
func (c *Cube) Reset() {
	c.store = NewStore(c.palette.Hidden)
	if err := Decode(SolvedFacelets, c.store, c.palette); err != nil {
		panic(err)
	}
}

// Decode repaints the cube from a facelet string. Cubie positions are kept.
func (c *Cube) Decode(facelets string) error {
	return Decode(facelets, c.store, c.palette)
}

// Facelets encodes the current state as a facelet string.
func (c *Cube) Facelets() string {
	return Encode(c.store, c.palette)
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	clone.store = c.store.Clone()
	return &clone
}

// ApplyMove applies a single move.
func (c *Cube) ApplyMove(m Move) {
	Apply(c.store, m)
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	ApplyMoves(c.store, moves)
}

// ApplyNotation parses and applies a move sequence such as "R U R' U'".
func (c *Cube) ApplyNotation(s string) ([]Move, error) {
	return ApplyNotation(c.store, s, c.strict, c.logger)
}

// IsSolved reports whether every face shows a single color.
func (c *Cube) IsSolved() bool {
	for bi := 0; bi < 6; bi++ {
		pos, dir, _ := FaceletAt(bi * 9)
		want := c.store.MustGet(pos).FaceColor(dir)
		if want == c.palette.Hidden {
			return false
		}
		for i := bi*9 + 1; i < bi*9+9; i++ {
			pos, dir, _ := FaceletAt(i)
			if c.store.MustGet(pos).FaceColor(dir) != want {
				return false
			}
		}
	}
	return true
}

// String renders the unfolded net with U on top, L F R B across and D below.
// Hidden or unknown facelets show as a dot.
func (c *Cube) String() string {
	f := c.Facelets()
	cell := func(face Face, i int) string {
		ch := f[faceBlock(face)*9+i]
		if ch == ' ' {
			return "."
		}
		return string(ch)
	}

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(cell(FaceU, row*3+col) + " ")
		}
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				sb.WriteString(cell(face, row*3+col) + " ")
			}
		}
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(cell(FaceD, row*3+col) + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// faceBlock returns the block number of a face in the facelet string.
func faceBlock(f Face) int {
	for i, face := range Faces {
		if face == f {
			return i
		}
	}
	return -1
}
