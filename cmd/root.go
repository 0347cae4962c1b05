package cmd

import (
	"fmt"
	"os"

	"music-extractor/infrastructure/config"
	"music-extractor/infrastructure/logging"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "music-extractor",
	Short: "Extract audio tracks from video files",
	Long: `music-extractor strips the audio track from video files by driving
an external ffmpeg executable:

  - Extract a single file from the command line
  - Process a batch of files through the desktop form
  - Capture ffmpeg's combined output to a per-file log

Example:
  music-extractor extract recording.mp4 --codec mp3`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func initConfig() {
	logging.Init(verbose)

	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config file is optional; commands fall back to built-in defaults
		cfg = nil
	}
}

// GetConfig returns the loaded configuration, nil when no config file exists
func GetConfig() *config.Config {
	return cfg
}
