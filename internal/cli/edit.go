package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/reelforge/reelforge/internal/compositor"
	"github.com/reelforge/reelforge/internal/editor"
	"github.com/reelforge/reelforge/internal/media"
	"github.com/reelforge/reelforge/internal/playback"
	"github.com/reelforge/reelforge/internal/segment"
	"github.com/reelforge/reelforge/internal/server"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [video_file]",
	Short: "Open the caption editor for a video file",
	Long: `Start a local web server hosting the caption timeline editor for the
specified video file.

Captions are loaded from a transcript JSON file (word-timed utterances) or an
existing SRT/VTT subtitle file. Without --transcript or --captions the editor
starts with an empty timeline and segments can be added at the playhead.

Examples:
  reelforge edit video.mp4 --transcript transcript.json
  reelforge edit video.mp4 --captions captions.srt
  reelforge edit video.mp4 --listen 0.0.0.0:9000`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().
		StringP("transcript", "t", "", "Transcript JSON file with word-timed utterances")
	editCmd.Flags().
		String("captions", "", "Existing subtitle file to load (srt, vtt)")
	editCmd.Flags().
		String("listen", "", "Listen address (overrides config)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", videoPath)
	}
	if !media.IsVideoFile(videoPath) {
		return fmt.Errorf("unsupported file type: %s (expected video file)", filepath.Ext(videoPath))
	}

	configPath, _ := cmd.Flags().GetString("config")
	transcriptPath, _ := cmd.Flags().GetString("transcript")
	captionsPath, _ := cmd.Flags().GetString("captions")
	listenAddr, _ := cmd.Flags().GetString("listen")

	if transcriptPath != "" && captionsPath != "" {
		return fmt.Errorf("--transcript and --captions are mutually exclusive")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	info, err := media.Probe(videoPath)
	if err != nil {
		return fmt.Errorf("failed to probe video: %w", err)
	}
	logger.Infow("Probed video",
		"path", videoPath,
		"duration", info.Duration,
		"resolution", fmt.Sprintf("%dx%d", info.Width, info.Height),
		"codec", info.Codec,
	)

	segments, err := loadSegments(transcriptPath, captionsPath)
	if err != nil {
		return err
	}
	if cfg.DefaultStyle != nil {
		for i := range segments {
			segments[i].Style = *cfg.DefaultStyle
		}
	}

	store := segment.NewStore()
	store.AddAll(segments)
	clock := playback.NewClock()
	clock.LoadedMetadata(info.Duration)

	ed := editor.New(store, clock, logger)
	comp := compositor.New(logger)
	srv := server.New(ed, comp, videoPath, cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("Starting caption editor",
		"listen", cfg.ListenAddr,
		"segments", store.Len(),
	)
	return srv.Run(ctx)
}
