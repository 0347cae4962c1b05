package extract

import (
	"context"
	"io"
)

// AudioExtractor defines the interface for audio extraction operations
// This is a port that can be implemented by different infrastructure adapters
type AudioExtractor interface {
	// Extract strips the audio track from the request's input file and writes
	// it to the request's output path. The external tool's combined stdout and
	// stderr is returned in arrival order; when progress is non-nil the same
	// text is streamed to it while the tool runs.
	Extract(ctx context.Context, req *Request, progress io.Writer) (string, error)
}

// FileChecker defines the interface for checking file existence
type FileChecker interface {
	Exists(path string) bool
}
