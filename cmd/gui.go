package cmd

import (
	"music-extractor/gui"

	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop extraction form",
	Long: `Open a desktop form for batch audio extraction.

Select input files and an output folder, pick a codec, and run the batch.
Files are processed one at a time on a background worker while ffmpeg's
output scrolls in the log view.`,
	RunE: runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	opts := gui.Options{}

	if cfg := GetConfig(); cfg != nil {
		opts.FFmpegPath = cfg.Tool.FFmpegPath
		opts.OutputDir = cfg.Paths.OutputDirectory
		opts.Codec = cfg.Audio.Codec
	}

	return gui.Run(opts)
}
