package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	applyFacelets string
	applyStrict   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply moves and print the resulting state",
	Long: `Apply a move sequence to a cube without animation and print the
unfolded net and the resulting facelet string.

Example:
  cubeanim apply "R U R' U'"
  cubeanim apply --facelets "$STATE" F2 L`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyFacelets, "facelets", "", "Starting facelet string (default: solved)")
	applyCmd.Flags().BoolVar(&applyStrict, "strict", false, "Fail on malformed move tokens instead of skipping them")
}

func runApply(cmd *cobra.Command, args []string) error {
	if applyStrict {
		cfg.Animation.StrictMoves = true
	}

	cube, err := newCube(applyFacelets)
	if err != nil {
		return err
	}

	moves, err := cube.ApplyNotation(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, cube.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Moves:    %d\n", len(moves))
	fmt.Fprintf(out, "Facelets: %s\n", cube.Facelets())
	fmt.Fprintf(out, "Solved:   %v\n", cube.IsSolved())
	return nil
}
