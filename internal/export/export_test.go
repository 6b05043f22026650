package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reelforge/reelforge/internal/segment"
)

func TestWriteSRT(t *testing.T) {
	segments := []segment.Segment{
		segment.New("segment-0", "Hello, world!", 1.0, 4.0),
		segment.New("segment-1", "Two lines\nof text.", 5.5, 8.2),
	}

	path := filepath.Join(t.TempDir(), "out.srt")
	writer, err := NewWriter(FormatSRT)
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}
	if err := writer.Write(segments, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "00:00:01,000 --> 00:00:04,000") {
		t.Errorf("missing first timestamp line:\n%s", content)
	}
	if !strings.Contains(content, "00:00:05,500 --> 00:00:08,200") {
		t.Errorf("missing second timestamp line:\n%s", content)
	}
	if !strings.Contains(content, "Two lines\nof text.") {
		t.Errorf("multi-line text mangled:\n%s", content)
	}
}

func TestWriteVTT(t *testing.T) {
	segments := []segment.Segment{
		segment.New("segment-0", "Hello", 0, 2.5),
	}

	path := filepath.Join(t.TempDir(), "out.vtt")
	writer, _ := NewWriter(FormatVTT)
	if err := writer.Write(segments, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	data, _ := os.ReadFile(path)
	content := string(data)

	if !strings.HasPrefix(content, "WEBVTT\n") {
		t.Error("missing WEBVTT header")
	}
	if !strings.Contains(content, "00:00:00.000 --> 00:00:02.500") {
		t.Errorf("missing timestamp line:\n%s", content)
	}
}

func TestWriteASSCarriesStyle(t *testing.T) {
	seg := segment.New("segment-0", "Styled", 1, 2)
	seg.Style.FontSize = 64
	seg.Style.Italic = true
	seg.Style.TextAlign = segment.AlignLeft
	seg.Style.Color = "#ff0000"
	seg.Style.Position = segment.Position{X: 50, Y: 85}

	path := filepath.Join(t.TempDir(), "out.ass")
	writer, _ := NewWriter(FormatASS)
	if err := writer.Write([]segment.Segment{seg}, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	data, _ := os.ReadFile(path)
	content := string(data)

	for _, want := range []string{
		"\\fs64",
		"\\i1",
		"\\an4",
		"\\pos(960,918)",
		"\\1c&H0000FF&", // red in BGR order
		"PlayResX: 1920",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("ASS output missing %q:\n%s", want, content)
		}
	}
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		seconds float64
		sep     string
		want    string
	}{
		{0, ",", "00:00:00,000"},
		{1.5, ",", "00:00:01,500"},
		{3661.25, ".", "01:01:01.250"},
		{-5, ",", "00:00:00,000"},
	}

	for _, tt := range tests {
		if got := formatClockTime(tt.seconds, tt.sep); got != tt.want {
			t.Errorf("formatClockTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestReadSRTRoundTrip(t *testing.T) {
	segments := []segment.Segment{
		segment.New("segment-0", "Hello, world!", 1.0, 4.0),
		segment.New("segment-1", "Second cue.", 5.5, 8.2),
	}

	path := filepath.Join(t.TempDir(), "cues.srt")
	writer, _ := NewWriter(FormatSRT)
	if err := writer.Write(segments, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	parsed, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(parsed))
	}

	if parsed[0].Text != "Hello, world!" || parsed[0].Start != 1.0 || parsed[0].End != 4.0 {
		t.Errorf("segment 0 = %+v", parsed[0])
	}
	if parsed[1].Start != 5.5 || parsed[1].End != 8.2 {
		t.Errorf("segment 1 bounds = [%v, %v]", parsed[1].Start, parsed[1].End)
	}
	if parsed[0].Style != segment.DefaultStyle() {
		t.Error("imported segment missing default style")
	}
}

func TestReadVTT(t *testing.T) {
	content := `WEBVTT

NOTE this comment block
is skipped

1
00:00:01.000 --> 00:00:04.000
Hello, world!

00:10.000 --> 00:12.500
Short timestamp cue.
`
	path := filepath.Join(t.TempDir(), "cues.vtt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	parsed, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(parsed))
	}
	if parsed[0].Text != "Hello, world!" {
		t.Errorf("segment 0 text = %q", parsed[0].Text)
	}
	if parsed[1].Start != 10.0 || parsed[1].End != 12.5 {
		t.Errorf("short timestamp parsed as [%v, %v]", parsed[1].Start, parsed[1].End)
	}
}

func TestReadFileUnsupported(t *testing.T) {
	if _, err := ReadFile("subs.ass"); err == nil {
		t.Error("expected error for unsupported import format")
	}
}

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.srt", FormatSRT},
		{"a.vtt", FormatVTT},
		{"a.ASS", FormatASS},
		{"a.ssa", FormatASS},
		{"a.unknown", FormatSRT},
	}
	for _, tt := range tests {
		if got := FormatFromExtension(tt.path); got != tt.want {
			t.Errorf("FormatFromExtension(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}

	if ExtensionForFormat(FormatVTT) != ".vtt" {
		t.Error("ExtensionForFormat(vtt)")
	}
	if _, err := NewWriter(Format("sub")); err == nil {
		t.Error("expected error for unknown writer format")
	}
}
