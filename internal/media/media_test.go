package media

import "testing"

func TestParseProbeOutput(t *testing.T) {
	raw := `{
  "streams": [
    {
      "codec_type": "video",
      "codec_name": "h264",
      "width": 1920,
      "height": 1080,
      "avg_frame_rate": "30000/1001"
    },
    {
      "codec_type": "audio",
      "codec_name": "aac"
    }
  ],
  "format": {
    "duration": "125.480000"
  }
}`

	info, err := parseProbeOutput("clip.mp4", raw)
	if err != nil {
		t.Fatalf("parseProbeOutput error: %v", err)
	}

	if info.Path != "clip.mp4" {
		t.Errorf("path = %q", info.Path)
	}
	if info.Duration != 125.48 {
		t.Errorf("duration = %v, want 125.48", info.Duration)
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("dimensions = %dx%d", info.Width, info.Height)
	}
	if info.Codec != "h264" {
		t.Errorf("codec = %q", info.Codec)
	}
	if !info.HasAudio {
		t.Error("audio stream not detected")
	}
	if info.FrameRate < 29.9 || info.FrameRate > 30.0 {
		t.Errorf("frame rate = %v, want ~29.97", info.FrameRate)
	}
}

func TestParseProbeOutputNoVideo(t *testing.T) {
	raw := `{"streams": [{"codec_type": "audio", "codec_name": "mp3"}], "format": {"duration": "10.0"}}`

	info, err := parseProbeOutput("audio.mp3", raw)
	if err != nil {
		t.Fatalf("parseProbeOutput error: %v", err)
	}
	if info.Width != 0 || info.Codec != "" {
		t.Errorf("unexpected video stream info: %+v", info)
	}
	if !info.HasAudio {
		t.Error("audio stream not detected")
	}
}

func TestParseProbeOutputInvalid(t *testing.T) {
	if _, err := parseProbeOutput("x", "not json"); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := parseProbeOutput("x", `{"format": {"duration": "abc"}}`); err == nil {
		t.Error("expected error for non-numeric duration")
	}
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"30/1", 30},
		{"25", 25},
		{"0/0", 0},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := parseFrameRate(tt.input); got != tt.want {
			t.Errorf("parseFrameRate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"clip.mp4", true},
		{"clip.MKV", true},
		{"movie.webm", true},
		{"audio.mp3", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		if got := IsVideoFile(tt.path); got != tt.want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
