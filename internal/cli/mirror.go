package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_animator"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Animate the moves of a physical GoCube",
	Long: `Connect to the first GoCube found and animate every turn it reports.
The mirror starts solved and tells the cube to treat its current state as
solved, so start with a solved cube.`,
	RunE: runMirror,
}

func init() {
	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command, args []string) error {
	client, results, err := scanForGoCube(cmd.Context())
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no GoCube devices found")
	}

	// Moves arrive on the BLE goroutine; the TUI picks them up from here.
	moves := make(chan []gocube.Move, 64)
	client.OnMoves(func(ms []gocube.Move) {
		select {
		case moves <- ms:
		default:
			logger.Warn("move buffer full, dropping moves", "count", len(ms))
		}
	})

	if err := client.Connect(cmd.Context(), results[0]); err != nil {
		return err
	}
	defer client.Disconnect()

	if err := client.ResetSolved(); err != nil {
		logger.Warn("reset solved failed", "error", err)
	}

	m := newAnimateModel("cubeanim mirror", gocube.NewCube(cubeOptions()...))
	m.source = moves
	m.status = func() string {
		battery := "?"
		if b := client.Battery(); b >= 0 {
			battery = fmt.Sprintf("%d%%", b)
		}
		return fmt.Sprintf("%s  battery %s", client.DeviceName(), battery)
	}
	return runProgram(m)
}
