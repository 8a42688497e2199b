// Package solver runs an external solving program behind the gocube.Solver
// interface.
package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	gocube "github.com/SeamusWaldron/gocube_animator"
)

// Command invokes Path with Args, then the facelet string, then the
// pattern when one is given. The solution is read from stdout.
type Command struct {
	Path    string
	Args    []string
	Timeout time.Duration
	Logger  *slog.Logger
}

var _ gocube.Solver = (*Command)(nil)

// Solve runs the command once. A non-zero exit is reported with the
// command's stderr; empty output is ErrNoSolution.
func (c *Command) Solve(ctx context.Context, facelets, pattern string) (string, error) {
	if c.Path == "" {
		return "", errors.New("solver: no command configured")
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append([]string{}, c.Args...)
	args = append(args, facelets)
	if pattern != "" {
		args = append(args, pattern)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Children of the solver may hold the output pipes open after a kill.
	cmd.WaitDelay = time.Second

	start := time.Now()
	err := cmd.Run()
	if c.Logger != nil {
		c.Logger.Debug("solver finished", "command", c.Path, "elapsed", time.Since(start), "error", err)
	}
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("solver: %w", ctx.Err())
		}
		return "", fmt.Errorf("solver: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	solution := strings.TrimSpace(stdout.String())
	if solution == "" {
		return "", gocube.ErrNoSolution
	}
	return solution, nil
}
