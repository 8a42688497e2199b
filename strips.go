package gocube

import "fmt"

// Strip is the row or column of three facelets on a neighboring face that
// borders a turning layer.
type Strip struct {
	Face     Face
	Facelets [3]int
	// Reversed is set when the cells run against ascending facelet index.
	Reversed bool
}

var stripTable = map[Face][4]Strip{}

func init() {
	for _, f := range Faces {
		stripTable[f] = deriveStrips(f)
	}
}

// Strips returns the four strips around a face in clockwise order. A
// clockwise turn of the face moves cell k of strip i to cell k of strip i+1.
func Strips(face Face) [4]Strip {
	return stripTable[face]
}

func deriveStrips(f Face) [4]Strip {
	axis, layer := f.Axis(), f.Layer()
	cw := Move{Face: f, Turn: CW}.Quarters()

	var start Direction
	for _, nf := range Faces {
		if nf.Axis() != axis {
			start = nf.Direction()
			break
		}
	}

	// Cells of the first strip in ascending facelet order.
	var cells [3]struct {
		pos Pos
		dir Direction
	}
	n := 0
	for i := 0; i < FaceletCount && n < 3; i++ {
		pos, dir, _ := FaceletAt(i)
		if dir == start && pos.Coord(axis) == layer {
			cells[n].pos, cells[n].dir = pos, dir
			n++
		}
	}
	if n != 3 {
		panic(fmt.Sprintf("gocube: face %s has %d cells bordering %v", f, n, start))
	}

	var strips [4]Strip
	for s := 0; s < 4; s++ {
		strip := Strip{Face: cells[0].dir.Face()}
		for k := range cells {
			idx, ok := FaceletIndex(cells[k].pos, cells[k].dir)
			if !ok {
				panic(fmt.Sprintf("gocube: no facelet at %v facing %v", cells[k].pos, cells[k].dir))
			}
			strip.Facelets[k] = idx
			cells[k].pos = rotate(cells[k].pos, axis, cw)
			cells[k].dir = dirPerm[axis][(cw+4)%4][cells[k].dir]
		}
		strip.Reversed = strip.Facelets[0] > strip.Facelets[2]
		strips[s] = strip
	}
	return strips
}
