package cmd

import (
	"context"
	"fmt"
	"os"

	appextract "music-extractor/application/extract"
	"music-extractor/domain/extract"
	"music-extractor/infrastructure/ffmpeg"
	"music-extractor/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	extractCodec      string
	extractOutputDir  string
	extractLogPath    string
	extractFFmpegPath string
	extractNoLog      bool
)

var extractCmd = &cobra.Command{
	Use:   "extract INPUT [OUTPUT]",
	Short: "Extract the audio track from a video file",
	Long: `Extract the audio track from a video file using ffmpeg.

When OUTPUT is omitted it is derived from the input file name and the codec,
placed either next to the input or in --output-dir. ffmpeg's combined output
is written to a sibling .log file unless --no-log is given.

Example:
  music-extractor extract recording.mp4
  music-extractor extract recording.mp4 talk.wav --codec wav
  music-extractor extract recording.mp4 --output-dir /music --log run.log`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractCodec, "codec", "", "audio codec (default mp3)")
	extractCmd.Flags().StringVar(&extractOutputDir, "output-dir", "", "directory for the derived output file (mutually exclusive with OUTPUT)")
	extractCmd.Flags().StringVar(&extractLogPath, "log", "", "path for the ffmpeg output log (default: output path with .log)")
	extractCmd.Flags().StringVar(&extractFFmpegPath, "ffmpeg", "", "path to the ffmpeg executable (overrides FFMPEG_PATH and auto-detection)")
	extractCmd.Flags().BoolVar(&extractNoLog, "no-log", false, "do not write a log file")
}

// validateExtractArgs rejects flag combinations before any tool resolution
// or process launch happens.
func validateExtractArgs(outputArg, outputDir string) error {
	if outputArg != "" && outputDir != "" {
		return fmt.Errorf("an explicit OUTPUT and --output-dir are mutually exclusive")
	}
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := ""
	if len(args) == 2 {
		outputPath = args[1]
	}

	if err := validateExtractArgs(outputPath, extractOutputDir); err != nil {
		return err
	}

	cfg := GetConfig()

	codec := extractCodec
	if codec == "" && cfg != nil {
		codec = cfg.Audio.Codec
	}

	outputDir := extractOutputDir
	if outputDir == "" && outputPath == "" && cfg != nil {
		outputDir = cfg.Paths.OutputDirectory
	}

	explicit := extractFFmpegPath
	if explicit == "" && cfg != nil {
		explicit = cfg.Tool.FFmpegPath
	}

	// Resolution failure is fatal to the whole run
	toolPath, err := ffmpeg.NewLocator().Locate(explicit)
	if err != nil {
		return err
	}

	extractor := ffmpeg.NewExtractor(ffmpeg.WithFFmpegPath(toolPath))
	fileChecker := filesystem.NewChecker()
	logWriter := filesystem.NewWriter()

	return RunExtractWithDependencies(
		cmd.Context(),
		extractor,
		fileChecker,
		logWriter,
		outputDir,
		codec,
		appextract.Input{
			InputPath:  inputPath,
			OutputPath: outputPath,
			Codec:      codec,
			LogPath:    extractLogPath,
			NoLog:      extractNoLog,
		},
		os.Stdout,
		os.Stderr,
	)
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// RunExtractWithDependencies runs the extract command with injected dependencies (for testing)
func RunExtractWithDependencies(
	ctx context.Context,
	extractor extract.AudioExtractor,
	fileChecker extract.FileChecker,
	logWriter appextract.LogWriter,
	outputDir string,
	codec string,
	input appextract.Input,
	output OutputWriter,
	errOutput OutputWriter,
) error {
	service := appextract.NewService(extractor, fileChecker, logWriter, outputDir, codec)

	fmt.Fprintf(output, "Extracting audio from %s...\n", input.InputPath)

	// ffmpeg chatter is diagnostics; stream it to the error channel
	result, err := service.Extract(ctx, input, errOutput)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Successfully created: %s\n", result.OutputPath)
	if result.LogPath != "" {
		fmt.Fprintf(output, "Log written to: %s\n", result.LogPath)
	}
	return nil
}
