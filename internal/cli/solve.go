package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_animator"
	"github.com/SeamusWaldron/gocube_animator/internal/solver"
)

var (
	solvePattern string
	solveAnimate bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <state>",
	Short: "Solve a facelet string with the configured solver",
	Long: `Pass a facelet string to the external solver configured under
solver.command and print the solution. With --animate the solution is played
back on the scrambled cube.

The solver is run once; failures are reported, not retried.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solvePattern, "pattern", "", "Target facelet string (default from config, else solved)")
	solveCmd.Flags().BoolVar(&solveAnimate, "animate", false, "Animate the solution")
}

func runSolve(cmd *cobra.Command, args []string) error {
	facelets := args[0]
	pattern := solvePattern
	if pattern == "" {
		pattern = cfg.Solver.Pattern
	}

	s := &solver.Command{
		Path:    cfg.Solver.Command,
		Args:    cfg.Solver.Args,
		Timeout: cfg.Solver.Timeout,
		Logger:  logger,
	}

	moves, err := gocube.Solve(cmd.Context(), s, facelets, pattern)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Solution (%d moves): %s\n", len(moves), gocube.FormatMoves(moves))
	if !solveAnimate || len(moves) == 0 {
		return nil
	}

	cube, err := newCube(facelets)
	if err != nil {
		return err
	}
	m := newAnimateModel("cubeanim solve", cube)
	m.exitWhenDone = true
	m.sched.Enqueue(moves...)
	return runProgram(m)
}
