package cli

import (
	"fmt"

	"github.com/reelforge/reelforge/internal/config"
	"github.com/reelforge/reelforge/internal/export"
	"github.com/reelforge/reelforge/internal/segment"
	"github.com/reelforge/reelforge/internal/transcript"
)

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadSegments reads caption segments from a transcript JSON file or an
// existing subtitle file. Both paths empty yields an empty slice.
func loadSegments(transcriptPath, captionsPath string) ([]segment.Segment, error) {
	switch {
	case transcriptPath != "":
		utterances, err := transcript.LoadFile(transcriptPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load transcript: %w", err)
		}
		segments, err := transcript.Normalize(utterances)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize transcript: %w", err)
		}
		return segments, nil
	case captionsPath != "":
		segments, err := export.ReadFile(captionsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load captions: %w", err)
		}
		return segments, nil
	default:
		return nil, nil
	}
}
