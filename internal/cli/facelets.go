package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var faceletsCmd = &cobra.Command{
	Use:   "facelets <state>",
	Short: "Validate a facelet string and print its net",
	Long: `Validate a 54-character facelet string, paint a cube with it and print
the unfolded net. Letters are case-insensitive; a space leaves a facelet
unset and is drawn as a dot.`,
	Args: cobra.ExactArgs(1),
	RunE: runFacelets,
}

func init() {
	rootCmd.AddCommand(faceletsCmd)
}

func runFacelets(cmd *cobra.Command, args []string) error {
	cube, err := newCube(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, cube.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Normalized: %q\n", cube.Facelets())
	fmt.Fprintf(out, "Solved:     %v\n", cube.IsSolved())
	return nil
}
