package render

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_animator"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8000", Hex(color.RGBA{R: 255, G: 128, A: 255}))
	assert.Equal(t, "#333333", Hex(color.RGBA{R: 51, G: 51, B: 51, A: 255}))
}

func TestFaceletsMatchCube(t *testing.T) {
	tr := gocube.NewTracker()
	tr.ApplyMoves(gocube.SexyMove)
	sched := gocube.NewScheduler(tr)

	colors, rotating := Facelets(sched.Frame())
	palette := tr.Cube().Palette()
	want := tr.Cube().Facelets()
	for i, c := range colors {
		f, ok := palette.FaceOf(c)
		require.True(t, ok, "facelet %d has color %v", i, c)
		assert.Equal(t, string(want[i]), string(f), "facelet %d", i)
		assert.False(t, rotating[i])
	}
}

func TestNetMarksTurningLayer(t *testing.T) {
	tr := gocube.NewTracker()
	sched := gocube.NewScheduler(tr, gocube.WithDuration(time.Second))

	idle := Net(sched.Frame())
	assert.Len(t, strings.Split(idle, "\n"), 9)
	assert.NotContains(t, idle, cellRotating)

	sched.Enqueue(gocube.R)
	sched.Tick(time.Unix(0, 0))
	frame := sched.Frame()

	_, rotating := Facelets(frame)
	n := 0
	for _, r := range rotating {
		if r {
			n++
		}
	}
	// Nine on R plus three on each of U, F, D and B.
	assert.Equal(t, 21, n)
	assert.Contains(t, Net(frame), cellRotating)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "idle", Status(gocube.Frame{}))

	tr := gocube.NewTracker()
	sched := gocube.NewScheduler(tr, gocube.WithDuration(time.Second))
	sched.Enqueue(gocube.RPrime)
	start := time.Unix(0, 0)
	sched.Tick(start)
	sched.Tick(start.Add(500 * time.Millisecond))

	status := Status(sched.Frame())
	assert.Contains(t, status, "R'")
	assert.Contains(t, status, "45.0°")
	assert.Contains(t, status, "50%")
}

func TestViewRender(t *testing.T) {
	v := View{
		Title:     "cubeanim",
		Frame:     gocube.NewScheduler(gocube.NewTracker()).Frame(),
		Pending:   3,
		Committed: 7,
		Solved:    true,
		Help:      "q quit",
	}
	out := v.Render()
	assert.Contains(t, out, "cubeanim")
	assert.Contains(t, out, "queued 3  committed 7  solved")
	assert.Contains(t, out, "q quit")
	assert.Contains(t, out, "idle")
}
