package gocube

import (
	"fmt"
	"image/color"
	"strings"
)

// FaceletCount is the number of visible squares on the puzzle.
const FaceletCount = 54

// SolvedFacelets is the facelet string of the solved puzzle.
const SolvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// Palette assigns a color to each face letter plus the hidden color used
// for slots that are not on the surface.
type Palette struct {
	Colors map[Face]color.RGBA
	Hidden color.RGBA
}

// DefaultPalette returns the standard scheme: white up, green front.
func DefaultPalette() Palette {
	return Palette{
		Colors: map[Face]color.RGBA{
			FaceU: {R: 255, G: 255, B: 255, A: 255},
			FaceR: {R: 255, G: 0, B: 0, A: 255},
			FaceF: {R: 0, G: 255, B: 0, A: 255},
			FaceD: {R: 255, G: 255, B: 0, A: 255},
			FaceL: {R: 255, G: 128, B: 0, A: 255},
			FaceB: {R: 0, G: 0, B: 255, A: 255},
		},
		Hidden: color.RGBA{R: 51, G: 51, B: 51, A: 255},
	}
}

// Color returns the color of a face. Unknown faces get the hidden color.
func (p Palette) Color(f Face) color.RGBA {
	if c, ok := p.Colors[f]; ok {
		return c
	}
	return p.Hidden
}

// FaceOf looks a color up in the palette.
func (p Palette) FaceOf(c color.RGBA) (Face, bool) {
	for _, f := range Faces {
		if pc, ok := p.Colors[f]; ok && pc == c {
			return f, true
		}
	}
	return "", false
}

type faceletBlock struct {
	face Face
	dir  Direction
	pos  func(row, col int) Pos
}

// faceletBlocks is the fixed layout of the facelet string, one block of nine
// per face in U R F D L B order.
var faceletBlocks = [6]faceletBlock{
	{FaceU, PosY, func(r, c int) Pos { return Pos{c - 1, 1, 1 - r} }},
	{FaceR, PosX, func(r, c int) Pos { return Pos{1, 1 - c, 1 - r} }},
	{FaceF, PosZ, func(r, c int) Pos { return Pos{c - 1, 1 - r, 1} }},
	{FaceD, NegY, func(r, c int) Pos { return Pos{c - 1, -1, r - 1} }},
	{FaceL, NegX, func(r, c int) Pos { return Pos{-1, 1 - c, 1 - r} }},
	{FaceB, NegZ, func(r, c int) Pos { return Pos{c - 1, 1 - r, -1} }},
}

// FaceletAt returns the cubie position and slot direction written by facelet
// index i.
func FaceletAt(i int) (Pos, Direction, error) {
	if i < 0 || i >= FaceletCount {
		return Pos{}, 0, fmt.Errorf("%w: facelet %d", ErrOutOfRange, i)
	}
	b := faceletBlocks[i/9]
	cell := i % 9
	return b.pos(cell/3, cell%3), b.dir, nil
}

// FaceletIndex is the inverse of FaceletAt. ok is false when the slot at p
// facing d is not on the surface.
func FaceletIndex(p Pos, d Direction) (int, bool) {
	for bi, b := range faceletBlocks {
		if b.dir != d {
			continue
		}
		for cell := 0; cell < 9; cell++ {
			if b.pos(cell/3, cell%3) == p {
				return bi*9 + cell, true
			}
		}
	}
	return 0, false
}

// ValidateFacelets checks the length and alphabet of a facelet string.
func ValidateFacelets(s string) error {
	if len(s) != FaceletCount {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidFacelets, len(s), FaceletCount)
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune("UDFBRLudfbrl ", rune(s[i])) {
			return fmt.Errorf("%w: character %q at %d", ErrInvalidFacelets, s[i], i)
		}
	}
	return nil
}

// Decode paints the store from a facelet string. The string is validated
// before any slot is touched; on success every slot is reset to hidden and
// each non-blank facelet sets one slot. Cubie positions are not changed.
func Decode(s string, store *Store, palette Palette) error {
	if err := ValidateFacelets(s); err != nil {
		return err
	}

	store.clearColors()
	for i := 0; i < FaceletCount; i++ {
		if s[i] == ' ' {
			continue
		}
		pos, dir, _ := FaceletAt(i)
		face := Face(strings.ToUpper(s[i : i+1]))
		store.MustGet(pos).SetFaceColor(dir, palette.Color(face))
	}
	return nil
}

// Encode reads the facelet string back from the store. Slots whose color is
// not in the palette encode as a space.
func Encode(store *Store, palette Palette) string {
	var sb strings.Builder
	sb.Grow(FaceletCount)
	for i := 0; i < FaceletCount; i++ {
		pos, dir, _ := FaceletAt(i)
		face, ok := palette.FaceOf(store.MustGet(pos).FaceColor(dir))
		if !ok {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(string(face))
	}
	return sb.String()
}
