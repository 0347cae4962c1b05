package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"music-extractor/domain/extract"
	"music-extractor/infrastructure/logging"

	"github.com/rs/zerolog"
)

// Extractor implements extract.AudioExtractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
	logger     zerolog.Logger
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		e.ffmpegPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// WithLogger sets a custom logger
func WithLogger(logger zerolog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
		logger:     logging.WithComponent("ffmpeg"),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements extract.AudioExtractor. It blocks until the external
// process exits; no timeout is enforced beyond the caller's context.
func (e *Extractor) Extract(ctx context.Context, req *extract.Request, progress io.Writer) (string, error) {
	args := []string{
		"-i", req.InputPath,
		"-vn", // No video
		"-acodec", req.Codec,
		"-y", // Overwrite output file if it exists
		req.OutputPath,
	}

	e.logger.Debug().
		Str("cmd", e.ffmpegPath).
		Strs("args", args).
		Msg("executing ffmpeg")

	var buf bytes.Buffer
	var sink io.Writer = &buf
	if progress != nil {
		sink = io.MultiWriter(&buf, progress)
	}

	if err := e.runner.Run(ctx, sink, e.ffmpegPath, args...); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return buf.String(), &extract.ToolError{
				ExitCode: exitErr.ExitCode(),
				Output:   buf.String(),
				Err:      err,
			}
		}
		// Launch failure: permission denied, a bad override path, and the like
		return buf.String(), &extract.ToolError{
			ExitCode: -1,
			Output:   buf.String(),
			Err:      err,
		}
	}

	return buf.String(), nil
}

// VerifyInstalled checks that ffmpeg is available
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Ensure Extractor implements extract.AudioExtractor
var _ extract.AudioExtractor = (*Extractor)(nil)
