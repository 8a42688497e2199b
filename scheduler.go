package gocube

import (
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/westphae/quaternion"
)

// Target receives committed moves. The scheduler reads the store to pick
// the cubies a move animates and never writes to it.
type Target interface {
	Store() *Store
	ApplyMove(Move)
}

// MoveState is the lifecycle of a scheduled move.
type MoveState int

const (
	Pending MoveState = iota
	Animating
	Committed
)

func (s MoveState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Animating:
		return "animating"
	case Committed:
		return "committed"
	default:
		return "unknown"
	}
}

// Animation is the in-flight move.
type Animation struct {
	Move    Move
	Batch   string
	Axis    Axis
	Layer   int
	Target  float64 // degrees about the positive axis
	Start   time.Time
	Elapsed time.Duration
	Cubies  []int // IDs of the layer's cubies when the move started

	done func(now time.Time)
}

type queued struct {
	move  Move
	batch string
}

// Scheduler runs queued moves one at a time. All transitions happen inside
// Tick, so a single render loop owns the cube state.
type Scheduler struct {
	target   Target
	duration time.Duration
	strict   bool
	logger   *slog.Logger

	queue     []queued
	anim      *Animation
	angle     float64
	progress  float64
	committed int

	onTransition func(m Move, batch string, state MoveState)
}

// NewScheduler creates a scheduler that commits into target.
func NewScheduler(target Target, opts ...Option) *Scheduler {
	cfg := newConfig(opts)
	return &Scheduler{
		target:   target,
		duration: cfg.duration,
		strict:   cfg.strictMoves,
		logger:   cfg.logger,
	}
}

// OnTransition sets a callback that fires whenever a move changes state.
func (s *Scheduler) OnTransition(cb func(m Move, batch string, state MoveState)) {
	s.onTransition = cb
}

// Enqueue appends moves to the queue and returns the batch ID they share.
// Invalid moves are dropped.
func (s *Scheduler) Enqueue(moves ...Move) string {
	batch := uuid.NewString()
	for _, m := range moves {
		if !m.Valid() {
			s.logger.Warn("dropping invalid move", "face", string(m.Face), "turn", int(m.Turn))
			continue
		}
		s.queue = append(s.queue, queued{move: m, batch: batch})
		s.notify(m, batch, Pending)
	}
	s.logger.Debug("enqueued moves", "batch", batch, "count", len(moves), "pending", len(s.queue))
	return batch
}

// EnqueueNotation parses a move sequence and queues it. With strict moves
// enabled a malformed token rejects the whole sequence.
func (s *Scheduler) EnqueueNotation(notation string) (string, error) {
	if s.strict {
		moves, err := ParseMovesStrict(notation)
		if err != nil {
			return "", err
		}
		return s.Enqueue(moves...), nil
	}

	moves, skipped := ParseMoves(notation)
	if len(skipped) > 0 {
		s.logger.Warn("skipping malformed move tokens", "tokens", skipped)
	}
	return s.Enqueue(moves...), nil
}

// Tick advances the scheduler to now and reports whether a redraw is needed.
// An idle scheduler starts the next queued move. A running animation
// updates its angle, and once its progress reaches 1 the move is committed
// and the next one starts at now. At most one move commits per tick.
func (s *Scheduler) Tick(now time.Time) bool {
	if s.anim == nil {
		return s.startNext(now)
	}

	a := s.anim
	a.Elapsed = now.Sub(a.Start)
	progress := 1.0
	if s.duration > 0 {
		progress = clamp(float64(a.Elapsed)/float64(s.duration), 0, 1)
	}
	if progress < 1 {
		s.progress = progress
		s.angle = a.Target * progress
		return true
	}

	s.commit(now)
	return true
}

func (s *Scheduler) startNext(now time.Time) bool {
	if len(s.queue) == 0 {
		return false
	}
	next := s.queue[0]
	s.queue = s.queue[1:]

	layer := Layer(s.target.Store(), next.move.Face)
	ids := make([]int, len(layer))
	for i, c := range layer {
		ids[i] = c.ID()
	}

	s.anim = &Animation{
		Move:   next.move,
		Batch:  next.batch,
		Axis:   next.move.Axis(),
		Layer:  next.move.Layer(),
		Target: next.move.TargetAngle(),
		Start:  now,
		Cubies: ids,
		done:   func(at time.Time) { s.startNext(at) },
	}
	s.angle, s.progress = 0, 0
	s.notify(next.move, next.batch, Animating)
	s.logger.Debug("animating move", "move", next.move.Notation(), "batch", next.batch, "target", s.anim.Target)
	return true
}

func (s *Scheduler) commit(now time.Time) {
	a := s.anim
	s.target.ApplyMove(a.Move)
	s.committed++
	s.anim = nil
	s.angle, s.progress = 0, 0
	s.notify(a.Move, a.Batch, Committed)
	s.logger.Debug("committed move", "move", a.Move.Notation(), "batch", a.Batch, "committed", s.committed)
	a.done(now)
}

// Finish commits the in-flight move and every queued move immediately, in
// order, and returns how many were committed.
func (s *Scheduler) Finish() int {
	n := 0
	if a := s.anim; a != nil {
		s.anim = nil
		s.target.ApplyMove(a.Move)
		s.committed++
		s.notify(a.Move, a.Batch, Committed)
		n++
	}
	for _, q := range s.queue {
		s.target.ApplyMove(q.move)
		s.committed++
		s.notify(q.move, q.batch, Committed)
		n++
	}
	s.queue = nil
	s.angle, s.progress = 0, 0
	if n > 0 {
		s.logger.Debug("finished moves", "count", n)
	}
	return n
}

// Cancel drops every queued move and returns how many were dropped. The
// in-flight move is kept and still commits on a later tick.
func (s *Scheduler) Cancel() int {
	n := len(s.queue)
	s.queue = nil
	if n > 0 {
		s.logger.Debug("cancelled queued moves", "count", n)
	}
	return n
}

func (s *Scheduler) notify(m Move, batch string, state MoveState) {
	if s.onTransition != nil {
		s.onTransition(m, batch, state)
	}
}

// Animation returns the in-flight move, or nil when idle.
func (s *Scheduler) Animation() *Animation {
	return s.anim
}

// State summarizes the scheduler: Animating while a move is in flight,
// Pending when moves wait to start, and Committed once everything queued
// has been applied.
func (s *Scheduler) State() MoveState {
	switch {
	case s.anim != nil:
		return Animating
	case len(s.queue) > 0:
		return Pending
	default:
		return Committed
	}
}

// Animating reports whether a move is in flight.
func (s *Scheduler) Animating() bool {
	return s.anim != nil
}

// Idle reports whether nothing is animating or queued.
func (s *Scheduler) Idle() bool {
	return s.anim == nil && len(s.queue) == 0
}

// Pending returns the number of queued moves not yet started.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Committed returns the number of moves committed so far.
func (s *Scheduler) Committed() int {
	return s.committed
}

// Duration returns the per-move animation time.
func (s *Scheduler) Duration() time.Duration {
	return s.duration
}

// CubieView is a read-only copy of one cubie.
type CubieView struct {
	ID     int
	Pos    Pos
	Colors [6]color.RGBA
}

// Frame is what a renderer draws for one tick. It holds copies, so drawing
// cannot change the cube.
type Frame struct {
	Animating bool
	Move      Move
	Axis      Axis
	Layer     int
	Angle     float64 // degrees about the positive axis
	Progress  float64
	Cubies    []CubieView

	rotating [27]bool
}

// Frame captures the committed state plus the current interpolation.
func (s *Scheduler) Frame() Frame {
	store := s.target.Store()
	f := Frame{Cubies: make([]CubieView, 0, 27)}
	for _, c := range store.Cubies() {
		f.Cubies = append(f.Cubies, CubieView{ID: c.ID(), Pos: c.Pos(), Colors: c.Colors()})
	}
	if a := s.anim; a != nil {
		f.Animating = true
		f.Move = a.Move
		f.Axis = a.Axis
		f.Layer = a.Layer
		f.Angle = s.angle
		f.Progress = s.progress
		for _, id := range a.Cubies {
			f.rotating[id] = true
		}
	}
	return f
}

// Rotating reports whether the cubie with the given ID is in the turning
// layer.
func (f Frame) Rotating(id int) bool {
	if id < 0 || id >= len(f.rotating) {
		return false
	}
	return f.rotating[id]
}

// Orientation returns the extra rotation to draw a cubie with. Cubies outside
// the turning layer get the identity.
func (f Frame) Orientation(v CubieView) quaternion.Quaternion {
	if !f.Animating || !f.Rotating(v.ID) {
		return quaternion.Quaternion{W: 1}
	}
	return axisRotation(f.Axis, f.Angle)
}

// Position returns where to draw a cubie's center.
func (f Frame) Position(v CubieView) quaternion.Vec3 {
	p := quaternion.Vec3{X: float64(v.Pos.X), Y: float64(v.Pos.Y), Z: float64(v.Pos.Z)}
	if !f.Animating || !f.Rotating(v.ID) {
		return p
	}
	return f.Orientation(v).RotateVec3(p)
}

func axisRotation(a Axis, degrees float64) quaternion.Quaternion {
	half := degrees * math.Pi / 360
	q := quaternion.Quaternion{W: math.Cos(half)}
	switch a {
	case AxisX:
		q.X = math.Sin(half)
	case AxisY:
		q.Y = math.Sin(half)
	case AxisZ:
		q.Z = math.Sin(half)
	}
	return q
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
