package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/reelforge/reelforge/internal/compositor"
	"github.com/reelforge/reelforge/internal/segment"
)

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// Advanced SubStation Alpha format; carries per-segment styling as
// override tags so the editor's look survives the export
type ASSWriter struct {
	Title    string
	PlayResX int
	PlayResY int
}

// writes the segments to an SRT file
func (w *SRTWriter) Write(segments []segment.Segment, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatClockTime(seg.Start, ","),
			formatClockTime(seg.End, ",")))
		sb.WriteString(seg.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// writes the segments to a VTT file
func (w *VTTWriter) Write(segments []segment.Segment, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatClockTime(seg.Start, "."),
			formatClockTime(seg.End, ".")))
		sb.WriteString(seg.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// writes the segments to an ASS file with styling overrides
func (w *ASSWriter) Write(segments []segment.Segment, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder

	sb.WriteString("[Script Info]\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", w.Title))
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString(fmt.Sprintf("PlayResX: %d\n", w.PlayResX))
	sb.WriteString(fmt.Sprintf("PlayResY: %d\n", w.PlayResY))
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	sb.WriteString("Style: Default,Arial,48,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,3,2,0,5,10,10,10,1\n\n")

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, seg := range segments {
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s%s\n",
			formatASSTime(seg.Start),
			formatASSTime(seg.End),
			w.overrideTags(seg.Style),
			escapeASSText(seg.Text)))
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// overrideTags renders a segment's style as an ASS override block
func (w *ASSWriter) overrideTags(style segment.Style) string {
	var tags strings.Builder

	tags.WriteString(fmt.Sprintf("\\fs%d", style.FontSize))
	tags.WriteString(fmt.Sprintf("\\fn%s", style.FontFamily))

	if style.Bold {
		tags.WriteString("\\b1")
	} else {
		tags.WriteString("\\b0")
	}
	if style.Italic {
		tags.WriteString("\\i1")
	} else {
		tags.WriteString("\\i0")
	}

	// middle-row numpad alignment around the \pos anchor
	switch style.TextAlign {
	case segment.AlignLeft:
		tags.WriteString("\\an4")
	case segment.AlignRight:
		tags.WriteString("\\an6")
	default:
		tags.WriteString("\\an5")
	}

	x := float64(w.PlayResX) * float64(style.Position.X) / 100
	y := float64(w.PlayResY) * float64(style.Position.Y) / 100
	tags.WriteString(fmt.Sprintf("\\pos(%d,%d)", int(x+0.5), int(y+0.5)))

	if c, err := compositor.ParseCSSColor(style.Color); err == nil {
		tags.WriteString("\\1c" + assColor(c.R, c.G, c.B))
	}
	if c, err := compositor.ParseCSSColor(style.BackgroundColor); err == nil {
		tags.WriteString("\\3c" + assColor(c.R, c.G, c.B))
		tags.WriteString(fmt.Sprintf("\\3a&H%02X&", 255-c.A))
	}

	return "{" + tags.String() + "}"
}

// assColor renders an ASS &HBBGGRR& color value
func assColor(r, g, b uint8) string {
	return fmt.Sprintf("&H%02X%02X%02X&", b, g, r)
}

// formatClockTime renders seconds as HH:MM:SS<sep>mmm, the shared shape
// of SRT and VTT timestamps
func formatClockTime(seconds float64, sep string) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	totalMillis := int64(seconds*1000 + 0.5)
	hours := totalMillis / 3600000
	minutes := totalMillis / 60000 % 60
	secs := totalMillis / 1000 % 60
	millis := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, secs, sep, millis)
}

func formatASSTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	totalCentis := int64(seconds*100 + 0.5)
	hours := totalCentis / 360000
	minutes := totalCentis / 6000 % 60
	secs := totalCentis / 100 % 60
	centis := totalCentis % 100

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}

func escapeASSText(text string) string {
	return strings.ReplaceAll(text, "\n", "\\N")
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
