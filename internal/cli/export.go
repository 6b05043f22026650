package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reelforge/reelforge/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [input_file]",
	Short: "Export captions to a subtitle file",
	Long: `Convert a transcript JSON file or an existing subtitle file into an
SRT, VTT, or ASS subtitle file.

ASS output carries segment styling (font, size, color, position) as
per-dialogue override tags, so styled captions survive the conversion.

Examples:
  reelforge export transcript.json --format srt
  reelforge export captions.srt --format ass -o styled.ass
  reelforge export transcript.json -f vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt, ass)")
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	var format export.Format
	switch strings.ToLower(formatStr) {
	case "srt":
		format = export.FormatSRT
	case "vtt":
		format = export.FormatVTT
	case "ass":
		format = export.FormatASS
	default:
		return fmt.Errorf("unsupported format %q: use srt, vtt, or ass", formatStr)
	}

	var transcriptPath, captionsPath string
	if strings.EqualFold(filepath.Ext(inputPath), ".json") {
		transcriptPath = inputPath
	} else {
		captionsPath = inputPath
	}

	segments, err := loadSegments(transcriptPath, captionsPath)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return fmt.Errorf("no caption segments found in %s", inputPath)
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = baseName + export.ExtensionForFormat(format)
	}

	writer, err := export.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(segments, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	logger.Infow("Exported captions",
		"input", inputPath,
		"output", outputPath,
		"format", formatStr,
		"segments", len(segments),
	)
	return nil
}
