// cubeanim - animate and inspect 3x3 puzzle states from the terminal.
package main

import (
	"github.com/SeamusWaldron/gocube_animator/internal/cli"
)

func main() {
	cli.Execute()
}
