package cli

import (
	"github.com/reelforge/reelforge/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "reelforge",
	Short: "Caption timeline editor for videos",
	Long: `ReelForge is a caption editing tool built around a word-timed transcript.

It normalizes transcript utterances into editable caption segments, renders
them over video frames, and serves a browser-based timeline editor for
adjusting text, timing, and styling. Finished captions can be exported to
SRT, VTT, or ASS subtitle files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("config", "c", "", "Config file path (YAML)")
}
