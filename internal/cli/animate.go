package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_animator"
	"github.com/SeamusWaldron/gocube_animator/internal/render"
)

var (
	animateFacelets string
	animateDuration time.Duration
	animateExit     bool
)

var animateCmd = &cobra.Command{
	Use:   "animate [moves...]",
	Short: "Animate a move sequence in the terminal",
	Long: `Play a move sequence one move at a time. Each move turns for the
configured duration before it is committed to the cube.

Keyboard shortcuts:
  f       - Finish: commit every remaining move now
  c       - Cancel queued moves (the turning move still completes)
  q/Esc   - Quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnimate,
}

func init() {
	rootCmd.AddCommand(animateCmd)
	animateCmd.Flags().StringVar(&animateFacelets, "facelets", "", "Starting facelet string (default: solved)")
	animateCmd.Flags().DurationVar(&animateDuration, "duration", 0, "Per-move animation time (default from config)")
	animateCmd.Flags().BoolVar(&animateExit, "exit", false, "Quit once every move has been committed")
}

func runAnimate(cmd *cobra.Command, args []string) error {
	if animateDuration > 0 {
		cfg.Animation.Duration = animateDuration
	}

	cube, err := newCube(animateFacelets)
	if err != nil {
		return err
	}

	m := newAnimateModel("cubeanim", cube)
	m.exitWhenDone = animateExit
	if _, err := m.sched.EnqueueNotation(strings.Join(args, " ")); err != nil {
		return err
	}
	return runProgram(m)
}

// Messages
type tickMsg time.Time
type movesMsg []gocube.Move
type sourceClosedMsg struct{}

// animateModel drives a scheduler from the bubbletea tick. It is the only
// code that calls Enqueue and Tick.
type animateModel struct {
	title    string
	tracker  *gocube.Tracker
	sched    *gocube.Scheduler
	interval time.Duration

	// Optional live move source, such as a BLE mirror.
	source <-chan []gocube.Move
	status func() string

	exitWhenDone bool
	quitting     bool
}

func newAnimateModel(title string, cube *gocube.Cube) *animateModel {
	tracker := gocube.NewTrackerFor(cube, cubeOptions()...)
	return &animateModel{
		title:    title,
		tracker:  tracker,
		sched:    gocube.NewScheduler(tracker, cubeOptions()...),
		interval: cfg.Animation.TickInterval,
	}
}

func runProgram(m *animateModel) error {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("animation failed: %w", err)
	}
	if fm, ok := final.(*animateModel); ok {
		fmt.Printf("Committed %d moves\n", fm.sched.Committed())
		fmt.Printf("Facelets: %s\n", fm.tracker.Cube().Facelets())
	}
	return nil
}

func (m *animateModel) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.listen())
}

func (m *animateModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *animateModel) listen() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return func() tea.Msg {
		moves, ok := <-m.source
		if !ok {
			return sourceClosedMsg{}
		}
		return movesMsg(moves)
	}
}

func (m *animateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.sched.Finish()
			return m, tea.Quit
		case "f":
			m.sched.Finish()
		case "c":
			m.sched.Cancel()
		}

	case tickMsg:
		m.sched.Tick(time.Time(msg))
		if m.exitWhenDone && m.sched.Idle() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tickCmd()

	case movesMsg:
		m.sched.Enqueue(msg...)
		return m, m.listen()

	case sourceClosedMsg:
		m.source = nil
	}

	return m, nil
}

func (m *animateModel) View() string {
	if m.quitting {
		return ""
	}

	help := "f finish • c cancel • q quit"
	title := m.title
	if m.status != nil {
		title += "  " + m.status()
	}

	return render.View{
		Title:     title,
		Frame:     m.sched.Frame(),
		Pending:   m.sched.Pending(),
		Committed: m.sched.Committed(),
		Solved:    m.tracker.IsSolved(),
		Help:      help,
	}.Render()
}
