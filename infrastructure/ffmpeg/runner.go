package ffmpeg

import (
	"context"
	"io"
	"os/exec"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	// Run executes a command with both stdout and stderr attached to the
	// combined writer, producing one merged stream in arrival order.
	Run(ctx context.Context, combined io.Writer, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// Run executes a command and returns any error. Stdout and stderr share the
// combined writer, so interleaving is whatever the operating system delivers.
func (r *ExecCommandRunner) Run(ctx context.Context, combined io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = combined
	cmd.Stderr = combined
	return cmd.Run()
}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}
