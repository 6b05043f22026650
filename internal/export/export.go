package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reelforge/reelforge/internal/segment"
)

// supported subtitle file formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// Writer serializes the segment store's current state to a subtitle file.
type Writer interface {
	Write(segments []segment.Segment, path string) error
}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatASS:
		return &ASSWriter{
			Title:    "ReelForge Captions",
			PlayResX: 1920,
			PlayResY: 1080,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// subtitle format based on file extension
func FormatFromExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return FormatVTT
	case ".ass", ".ssa":
		return FormatASS
	default:
		return FormatSRT
	}
}

// file extension for a format
func ExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	default:
		return ".srt"
	}
}
