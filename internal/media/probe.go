package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Probe runs ffprobe on the given media file and returns its stream
// information. ffprobe must be on PATH.
func Probe(path string) (*Info, error) {
	if err := fileExists(path); err != nil {
		return nil, err
	}

	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseProbeOutput(path, raw)
}

// ExtractFrame decodes the video frame nearest to t seconds, scaled to
// the given dimensions. Used as the backdrop the caption overlay is
// composited onto.
func ExtractFrame(ctx context.Context, path string, t float64, width, height int) (image.Image, error) {
	if err := fileExists(path); err != nil {
		return nil, err
	}
	if t < 0 {
		t = 0
	}

	buf := bytes.NewBuffer(nil)
	err := ffmpeg.Input(path, ffmpeg.KwArgs{"ss": fmt.Sprintf("%.3f", t)}).
		Output("pipe:", ffmpeg.KwArgs{
			"vframes": 1,
			"format":  "image2",
			"vcodec":  "png",
			"s":       fmt.Sprintf("%dx%d", width, height),
		}).
		WithOutput(buf).
		Silent(true).
		Run()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg frame extraction failed: %w", err)
	}

	frame, err := png.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode extracted frame: %w", err)
	}

	return frame, nil
}
