package media

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// media file information reported by ffprobe
type Info struct {
	Path      string
	Duration  float64 // seconds
	Width     int
	Height    int
	FrameRate float64
	Codec     string
	HasAudio  bool
}

// shape of ffprobe's -print_format json output
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType    string `json:"codec_type"`
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
	} `json:"streams"`
}

func parseProbeOutput(path, raw string) (*Info, error) {
	var probe probeOutput
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := &Info{Path: path}

	if probe.Format.Duration != "" {
		seconds, err := strconv.ParseFloat(probe.Format.Duration, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse duration %q: %w", probe.Format.Duration, err)
		}
		info.Duration = seconds
	}

	for _, stream := range probe.Streams {
		switch stream.CodecType {
		case "video":
			if info.Width == 0 {
				info.Width = stream.Width
				info.Height = stream.Height
				info.Codec = stream.CodecName
				info.FrameRate = parseFrameRate(stream.AvgFrameRate)
			}
		case "audio":
			info.HasAudio = true
		}
	}

	return info, nil
}

// parseFrameRate converts ffprobe's rational rate ("30000/1001") to fps
func parseFrameRate(rate string) float64 {
	parts := strings.SplitN(rate, "/", 2)
	if len(parts) != 2 {
		fps, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return 0
		}
		return fps
	}

	num, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	den, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || den == 0 {
		return 0
	}
	return num / den
}

// checks if the file is a video file based on extension
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	videoExts := map[string]bool{
		".mp4":  true,
		".mkv":  true,
		".avi":  true,
		".mov":  true,
		".wmv":  true,
		".flv":  true,
		".webm": true,
		".m4v":  true,
		".mpeg": true,
		".mpg":  true,
		".3gp":  true,
	}
	return videoExts[ext]
}

func fileExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", path)
	}
	return nil
}
