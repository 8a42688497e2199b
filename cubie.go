package gocube

import (
	"fmt"
	"image/color"
)

// Direction is one of the six fixed world directions a cubie face can point.
// Directions never rotate; a move relabels which color sits in which slot.
type Direction int

const (
	PosX Direction = 0 // Right
	NegX Direction = 1 // Left
	PosY Direction = 2 // Up
	NegY Direction = 3 // Down
	PosZ Direction = 4 // Front
	NegZ Direction = 5 // Back
)

// Directions lists the six directions in slot order.
var Directions = [6]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}

func (d Direction) String() string {
	switch d {
	case PosX:
		return "+X"
	case NegX:
		return "-X"
	case PosY:
		return "+Y"
	case NegY:
		return "-Y"
	case PosZ:
		return "+Z"
	case NegZ:
		return "-Z"
	default:
		return "?"
	}
}

// Axis returns the axis the direction lies on.
func (d Direction) Axis() Axis {
	return Axis(d / 2)
}

// Sign returns +1 for positive directions and -1 for negative ones.
func (d Direction) Sign() int {
	if d%2 == 0 {
		return 1
	}
	return -1
}

// Vector returns the unit vector of the direction.
func (d Direction) Vector() Pos {
	var p Pos
	p.set(d.Axis(), d.Sign())
	return p
}

// Face returns the face whose outward normal is d.
func (d Direction) Face() Face {
	switch d {
	case PosX:
		return FaceR
	case NegX:
		return FaceL
	case PosY:
		return FaceU
	case NegY:
		return FaceD
	case PosZ:
		return FaceF
	default:
		return FaceB
	}
}

func directionOf(a Axis, sign int) Direction {
	d := Direction(a * 2)
	if sign < 0 {
		d++
	}
	return d
}

// directionFromVector maps a unit vector back to its direction.
func directionFromVector(p Pos) (Direction, bool) {
	for _, d := range Directions {
		if d.Vector() == p {
			return d, true
		}
	}
	return 0, false
}

// Pos is an integer cubie position in {-1,0,1}³.
type Pos struct {
	X, Y, Z int
}

// Valid reports whether every coordinate is -1, 0 or 1.
func (p Pos) Valid() bool {
	return inRange(p.X) && inRange(p.Y) && inRange(p.Z)
}

func inRange(v int) bool {
	return v >= -1 && v <= 1
}

// Index encodes the position as (x+1)+(y+1)*3+(z+1)*9.
func (p Pos) Index() int {
	return (p.X + 1) + (p.Y+1)*3 + (p.Z+1)*9
}

// PosFromIndex is the inverse of Pos.Index.
func PosFromIndex(i int) Pos {
	return Pos{X: i%3 - 1, Y: (i/3)%3 - 1, Z: i/9 - 1}
}

// Coord returns the coordinate along an axis.
func (p Pos) Coord(a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func (p *Pos) set(a Axis, v int) {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	default:
		p.Z = v
	}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Origin is the interior cubie's position.
var Origin = Pos{}

// Cubie is one of the 27 sub-cubes. Its ID is the index of its home
// position and never changes.
type Cubie struct {
	id     int
	pos    Pos
	colors [6]color.RGBA
}

// ID returns the cubie's stable identity.
func (c *Cubie) ID() int {
	return c.id
}

// Pos returns the cubie's current position.
func (c *Cubie) Pos() Pos {
	return c.pos
}

// FaceColor returns the color in the slot facing d.
func (c *Cubie) FaceColor(d Direction) color.RGBA {
	return c.colors[d]
}

// SetFaceColor sets the color in the slot facing d. Colors are not validated.
func (c *Cubie) SetFaceColor(d Direction, col color.RGBA) {
	c.colors[d] = col
}

// Colors returns a copy of all six slots.
func (c *Cubie) Colors() [6]color.RGBA {
	return c.colors
}

// Exposed reports whether the slot facing d is on the puzzle surface.
func (c *Cubie) Exposed(d Direction) bool {
	return c.pos.Coord(d.Axis()) == d.Sign()
}

// Store owns the 27 cubies and indexes them by position.
type Store struct {
	cubies [27]*Cubie // by ID
	slots  [27]*Cubie // by Pos.Index
	hidden color.RGBA
}

// NewStore creates a store with every cubie at its home position and every
// slot set to the hidden color.
func NewStore(hidden color.RGBA) *Store {
	s := &Store{hidden: hidden}
	for i := 0; i < 27; i++ {
		c := &Cubie{id: i, pos: PosFromIndex(i)}
		for _, d := range Directions {
			c.colors[d] = hidden
		}
		s.cubies[i] = c
		s.slots[i] = c
	}
	return s
}

// Hidden returns the neutral color used for unexposed slots.
func (s *Store) Hidden() color.RGBA {
	return s.hidden
}

// Get returns the cubie at p.
func (s *Store) Get(p Pos) (*Cubie, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, p)
	}
	c := s.slots[p.Index()]
	if c == nil || c.pos != p {
		return nil, fmt.Errorf("%w: no cubie at %v", ErrCorruptState, p)
	}
	return c, nil
}

// MustGet is like Get but panics when no cubie occupies p. A missing cubie
// means the position invariant is broken and any further rendering would
// show wrong colors.
func (s *Store) MustGet(p Pos) *Cubie {
	c, err := s.Get(p)
	if err != nil {
		panic(err)
	}
	return c
}

// SetPosition moves c to p. The slot c leaves is emptied, so callers that
// move cubies one at a time must fill it before the store is read again.
func (s *Store) SetPosition(c *Cubie, p Pos) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %v", ErrOutOfRange, p)
	}
	if other := s.slots[p.Index()]; other != nil && other != c {
		return fmt.Errorf("%w: %v holds cubie %d", ErrPositionOccupied, p, other.id)
	}
	if s.slots[c.pos.Index()] == c {
		s.slots[c.pos.Index()] = nil
	}
	c.pos = p
	s.slots[p.Index()] = c
	return nil
}

// relocate moves a group of cubies at once. The targets must be exactly the
// slots the group vacates.
func (s *Store) relocate(group []*Cubie, targets []Pos) {
	for _, c := range group {
		s.slots[c.pos.Index()] = nil
	}
	for i, c := range group {
		c.pos = targets[i]
		if s.slots[c.pos.Index()] != nil {
			panic(fmt.Errorf("%w: two cubies moved to %v", ErrCorruptState, c.pos))
		}
		s.slots[c.pos.Index()] = c
	}
}

// Cubie returns the cubie with the given ID.
func (s *Store) Cubie(id int) *Cubie {
	return s.cubies[id]
}

// Cubies returns all cubies ordered by ID.
func (s *Store) Cubies() []*Cubie {
	out := make([]*Cubie, len(s.cubies))
	copy(out, s.cubies[:])
	return out
}

// clearColors sets every slot of every cubie to the hidden color.
func (s *Store) clearColors() {
	for _, c := range s.cubies {
		for _, d := range Directions {
			c.colors[d] = s.hidden
		}
	}
}

// Clone creates a deep copy of the store.
func (s *Store) Clone() *Store {
	clone := &Store{hidden: s.hidden}
	for i, c := range s.cubies {
		cc := *c
		clone.cubies[i] = &cc
		clone.slots[cc.pos.Index()] = &cc
	}
	return clone
}

// Equal reports whether every cubie has the same position and colors in
// both stores.
func (s *Store) Equal(other *Store) bool {
	for i, c := range s.cubies {
		o := other.cubies[i]
		if c.pos != o.pos || c.colors != o.colors {
			return false
		}
	}
	return true
}

// Validate checks that the positions form a permutation of {-1,0,1}³ and
// that the interior cubie is at the origin.
func (s *Store) Validate() error {
	var seen [27]bool
	for _, c := range s.cubies {
		if !c.pos.Valid() {
			return fmt.Errorf("%w: cubie %d at %v", ErrCorruptState, c.id, c.pos)
		}
		idx := c.pos.Index()
		if seen[idx] {
			return fmt.Errorf("%w: %v occupied twice", ErrCorruptState, c.pos)
		}
		seen[idx] = true
		if s.slots[idx] != c {
			return fmt.Errorf("%w: index for %v is stale", ErrCorruptState, c.pos)
		}
	}
	if s.cubies[Origin.Index()].pos != Origin {
		return fmt.Errorf("%w: interior cubie moved", ErrCorruptState)
	}
	return nil
}
