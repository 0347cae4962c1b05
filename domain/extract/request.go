package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultCodec is the audio codec used when a request does not specify one
const DefaultCodec = "mp3"

// Request represents a single audio extraction request against one input file
type Request struct {
	InputPath  string
	OutputPath string
	Codec      string
	LogPath    string // Empty means no log file is written
}

// NewRequest creates a new Request with validation.
// When outputPath is empty it is derived from the input stem and codec.
// When logPath is empty it defaults to the output path with a .log extension.
func NewRequest(inputPath, outputPath, codec, logPath string) (*Request, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("input path is required")
	}

	if codec == "" {
		codec = DefaultCodec
	}

	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath, filepath.Dir(inputPath), codec)
	}

	if logPath == "" {
		logPath = DeriveLogPath(outputPath)
	}

	return &Request{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Codec:      codec,
		LogPath:    logPath,
	}, nil
}

// DeriveOutputPath returns the output path for an input file: the input's
// base name with the codec as extension, placed in outputDir.
func DeriveOutputPath(inputPath, outputDir, codec string) string {
	stem := Stem(inputPath)
	return filepath.Join(outputDir, stem+"."+codec)
}

// DeriveLogPath returns the default log path for an output file: the same
// base name with a .log extension.
func DeriveLogPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + ".log"
}

// Stem returns the base name of a path without its extension
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
