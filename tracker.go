package gocube

// Tracker wraps a Cube as a scheduler commit target. It records committed
// moves and reports when the cube becomes solved.
type Tracker struct {
	cube        *Cube
	moveHistory bool
	moves       []Move
	count       int
	wasSolved   bool

	commitCallback func(m Move, count int)
	solvedCallback func(moves int)
}

// NewTracker creates a new tracker starting from a solved cube.
func NewTracker(opts ...Option) *Tracker {
	cfg := newConfig(opts)
	return &Tracker{
		cube:        NewCube(opts...),
		moveHistory: cfg.moveHistory,
		wasSolved:   true,
	}
}

// NewTrackerFor creates a tracker around an existing cube.
func NewTrackerFor(cube *Cube, opts ...Option) *Tracker {
	cfg := newConfig(opts)
	return &Tracker{
		cube:        cube,
		moveHistory: cfg.moveHistory,
		wasSolved:   cube.IsSolved(),
	}
}

// OnCommit sets a callback that fires after every committed move with the
// number of moves committed so far.
func (t *Tracker) OnCommit(cb func(m Move, count int)) {
	t.commitCallback = cb
}

// OnSolved sets a callback that fires when a move leaves the cube solved
// and the move before it did not.
func (t *Tracker) OnSolved(cb func(moves int)) {
	t.solvedCallback = cb
}

// Reset resets the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.moves = nil
	t.count = 0
	t.wasSolved = true
}

// Store returns the cube's cubie store.
func (t *Tracker) Store() *Store {
	return t.cube.Store()
}

// ApplyMove applies a move and checks for a newly solved state.
func (t *Tracker) ApplyMove(m Move) {
	if !m.Valid() {
		return
	}
	t.cube.ApplyMove(m)
	t.count++
	if t.moveHistory {
		t.moves = append(t.moves, m)
	}
	if t.commitCallback != nil {
		t.commitCallback(m, t.count)
	}
	t.checkSolved()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the last recorded move. It returns false when there is no
// history to undo.
func (t *Tracker) Undo() (Move, bool) {
	if len(t.moves) == 0 {
		return Move{}, false
	}
	last := t.moves[len(t.moves)-1]
	t.moves = t.moves[:len(t.moves)-1]
	t.count--
	t.cube.ApplyMove(last.Inverse())
	t.wasSolved = t.cube.IsSolved()
	return last, true
}

func (t *Tracker) checkSolved() {
	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.solvedCallback != nil {
		t.solvedCallback(t.count)
	}
	t.wasSolved = solved
}

// Count returns the number of moves applied since the last reset.
func (t *Tracker) Count() int {
	return t.count
}

// Moves returns a copy of the committed move history.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// Simplified returns the history with adjacent same-face moves merged.
func (t *Tracker) Simplified() []Move {
	return Simplify(t.Moves())
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
