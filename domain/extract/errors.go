package extract

import (
	"errors"
	"fmt"
)

// ErrToolNotFound is returned when no usable ffmpeg executable could be located
var ErrToolNotFound = errors.New("ffmpeg executable not found")

// InputNotFoundError is returned when a request's input file does not exist.
// It is reported before any external process is launched.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file does not exist: %s", e.Path)
}

// NewInputNotFoundError creates an InputNotFoundError for the given path
func NewInputNotFoundError(path string) *InputNotFoundError {
	return &InputNotFoundError{Path: path}
}

// ToolError is returned when the external tool exited nonzero or could not be
// launched. Output carries the tool's combined stdout and stderr for
// diagnostic surfacing.
type ToolError struct {
	ExitCode int // -1 when the process could not be launched
	Output   string
	Err      error
}

func (e *ToolError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("ffmpeg failed to launch: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg exited with status %d", e.ExitCode)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
