// Package render draws scheduler frames as an unfolded net in the terminal.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	gocube "github.com/SeamusWaldron/gocube_animator"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const (
	cellBlank    = "  "
	cellRotating = "▒▒"
	gap          = " "
)

// Hex formats a color as #rrggbb.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// Facelets returns the color of every facelet in the frame, in facelet
// string order, and whether that facelet's cubie is turning.
func Facelets(f gocube.Frame) ([gocube.FaceletCount]color.RGBA, [gocube.FaceletCount]bool) {
	var byPos [27]*gocube.CubieView
	for i := range f.Cubies {
		v := &f.Cubies[i]
		byPos[v.Pos.Index()] = v
	}

	var colors [gocube.FaceletCount]color.RGBA
	var rotating [gocube.FaceletCount]bool
	for i := 0; i < gocube.FaceletCount; i++ {
		pos, dir, _ := gocube.FaceletAt(i)
		v := byPos[pos.Index()]
		if v == nil {
			continue
		}
		colors[i] = v.Colors[dir]
		rotating[i] = f.Rotating(v.ID)
	}
	return colors, rotating
}

func cell(c color.RGBA, turning bool) string {
	text := cellBlank
	if turning {
		text = cellRotating
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(Hex(c))).
		Foreground(lipgloss.Color("#000000")).
		Render(text)
}

// Net draws the frame as U on top, L F R B across and D below. Facelets of
// the turning layer are hatched.
func Net(f gocube.Frame) string {
	colors, rotating := Facelets(f)
	block := func(face gocube.Face, row int) string {
		base := faceBlock(face) * 9
		var sb strings.Builder
		for col := 0; col < 3; col++ {
			i := base + row*3 + col
			sb.WriteString(cell(colors[i], rotating[i]))
		}
		return sb.String()
	}
	pad := strings.Repeat(" ", 3*len(cellBlank)) + gap

	var lines []string
	for row := 0; row < 3; row++ {
		lines = append(lines, pad+block(gocube.FaceU, row))
	}
	for row := 0; row < 3; row++ {
		parts := make([]string, 0, 4)
		for _, face := range []gocube.Face{gocube.FaceL, gocube.FaceF, gocube.FaceR, gocube.FaceB} {
			parts = append(parts, block(face, row))
		}
		lines = append(lines, strings.Join(parts, gap))
	}
	for row := 0; row < 3; row++ {
		lines = append(lines, pad+block(gocube.FaceD, row))
	}
	return strings.Join(lines, "\n")
}

func faceBlock(f gocube.Face) int {
	for i, face := range gocube.Faces {
		if face == f {
			return i
		}
	}
	return 0
}

// Status describes the in-flight move, or "idle".
func Status(f gocube.Frame) string {
	if !f.Animating {
		return "idle"
	}
	return fmt.Sprintf("%s  %6.1f°  %3.0f%%", f.Move.Notation(), f.Angle, f.Progress*100)
}

// View is the full screen: title, net, status line and queue summary.
type View struct {
	Title     string
	Frame     gocube.Frame
	Pending   int
	Committed int
	Solved    bool
	Help      string
}

// Render draws the view.
func (v View) Render() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(v.Title))
	sb.WriteString("\n\n")
	sb.WriteString(Net(v.Frame))
	sb.WriteString("\n\n")
	sb.WriteString(moveStyle.Render(Status(v.Frame)))
	sb.WriteString("\n")

	state := fmt.Sprintf("queued %d  committed %d", v.Pending, v.Committed)
	if v.Solved {
		state += "  solved"
	}
	sb.WriteString(statusStyle.Render(state))
	sb.WriteString("\n")
	if v.Help != "" {
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render(v.Help))
		sb.WriteString("\n")
	}
	return sb.String()
}
