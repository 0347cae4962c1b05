package extract

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"music-extractor/domain/extract"
)

// LogWriter abstracts writing the captured tool output to a log file
type LogWriter interface {
	WriteFile(path string, data []byte) error
}

// Result contains the result of an audio extraction operation
type Result struct {
	OutputPath string
	LogPath    string // Empty when no log file was written
	Output     string // The tool's combined stdout and stderr
}

// Service coordinates audio extraction operations
type Service struct {
	extractor   extract.AudioExtractor
	fileChecker extract.FileChecker
	logWriter   LogWriter
	outputDir   string
	codec       string
}

// NewService creates a new extraction Service. outputDir and codec are
// defaults applied when an Input leaves them unset; an empty outputDir means
// outputs are placed next to their inputs.
func NewService(extractor extract.AudioExtractor, fileChecker extract.FileChecker, logWriter LogWriter, outputDir string, codec string) *Service {
	if codec == "" {
		codec = extract.DefaultCodec
	}
	return &Service{
		extractor:   extractor,
		fileChecker: fileChecker,
		logWriter:   logWriter,
		outputDir:   outputDir,
		codec:       codec,
	}
}

// Input represents the input for a single audio extraction operation
type Input struct {
	InputPath  string
	OutputPath string // Optional, derived from the input stem when empty
	Codec      string // Optional, uses service default if empty
	LogPath    string // Optional, defaults to the output path with .log
	NoLog      bool   // Suppress the log file entirely
}

// Extract runs one extraction request to completion. The external tool's
// combined output is streamed to progress (when non-nil) and written verbatim
// to the log path, overwriting any previous log. The log is written on
// failure too, so diagnostics survive.
func (s *Service) Extract(ctx context.Context, input Input, progress io.Writer) (*Result, error) {
	// Verify the input exists before any process is spawned
	if !s.fileChecker.Exists(input.InputPath) {
		return nil, extract.NewInputNotFoundError(input.InputPath)
	}

	codec := input.Codec
	if codec == "" {
		codec = s.codec
	}

	outputPath := input.OutputPath
	if outputPath == "" {
		outputDir := s.outputDir
		if outputDir == "" {
			outputDir = filepath.Dir(input.InputPath)
		}
		outputPath = extract.DeriveOutputPath(input.InputPath, outputDir, codec)
	}

	req, err := extract.NewRequest(input.InputPath, outputPath, codec, input.LogPath)
	if err != nil {
		return nil, err
	}
	if input.NoLog {
		req.LogPath = ""
	}

	output, extractErr := s.extractor.Extract(ctx, req, progress)

	if req.LogPath != "" {
		if logErr := s.logWriter.WriteFile(req.LogPath, []byte(output)); logErr != nil && extractErr == nil {
			return nil, fmt.Errorf("failed to write log file: %w", logErr)
		}
	}

	if extractErr != nil {
		return nil, extractErr
	}

	return &Result{
		OutputPath: req.OutputPath,
		LogPath:    req.LogPath,
		Output:     output,
	}, nil
}
