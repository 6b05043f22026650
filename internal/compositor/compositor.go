package compositor

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/reelforge/reelforge/internal/logging"
	"github.com/reelforge/reelforge/internal/segment"
)

// Padding is the margin in pixels around the caption text inside its
// background box.
const Padding = 20

// default overlay dimensions, matching a 1080p frame
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Compositor draws the active caption segment onto an overlay surface.
// RenderFrame is a pure function of (segments, currentTime): the overlay
// is fully cleared before anything is drawn, so two calls with identical
// inputs produce identical output and stale frames can never bleed
// through.
type Compositor struct {
	log   *logging.Logger
	faces *faceCache
}

func New(log *logging.Logger) *Compositor {
	if log == nil {
		log = logging.NewNop()
	}
	return &Compositor{
		log:   log,
		faces: newFaceCache(),
	}
}

// NewSurface allocates a transparent overlay surface.
func NewSurface(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// RenderFrame clears the overlay and, when a segment is active at t,
// draws its background box and styled text. Rendering problems (bad
// color, unusable font) degrade to skipping that draw for the frame;
// playback is never interrupted.
func (c *Compositor) RenderFrame(dst *image.RGBA, store *segment.Store, t float64) {
	clearSurface(dst)

	active, ok := store.ActiveAt(t)
	if !ok {
		return
	}
	c.drawSegment(dst, active)
}

// Composite renders the overlay for time t on top of a video frame. The
// frame is drawn first, so a nil or missing frame still yields the bare
// overlay on black.
func (c *Compositor) Composite(frame image.Image, store *segment.Store, t float64, width, height int) *image.RGBA {
	out := NewSurface(width, height)
	if frame != nil {
		draw.Draw(out, out.Bounds(), frame, frame.Bounds().Min, draw.Src)
	}

	overlay := NewSurface(width, height)
	c.RenderFrame(overlay, store, t)
	draw.Draw(out, out.Bounds(), overlay, image.Point{}, draw.Over)
	return out
}

func (c *Compositor) drawSegment(dst *image.RGBA, seg segment.Segment) {
	bounds := dst.Bounds()
	style := seg.Style

	// pixel anchor from frame-relative percentages
	x := bounds.Min.X + int(float64(bounds.Dx())*float64(style.Position.X)/100+0.5)
	y := bounds.Min.Y + int(float64(bounds.Dy())*float64(style.Position.Y)/100+0.5)

	face, err := c.faces.face(style)
	if err != nil {
		c.log.Debugw("skipping caption draw, font unavailable",
			"segment", seg.ID,
			"error", err,
		)
		return
	}

	drawer := &font.Drawer{Dst: dst, Face: face}
	textWidth := drawer.MeasureString(seg.Text).Ceil()
	textHeight := style.FontSize

	// background box centered on the anchor regardless of text alignment
	if bg, err := ParseCSSColor(style.BackgroundColor); err != nil {
		c.log.Debugw("skipping caption background, bad color",
			"segment", seg.ID,
			"color", style.BackgroundColor,
		)
	} else {
		box := image.Rect(
			x-textWidth/2-Padding,
			y-textHeight/2-Padding/2,
			x+textWidth/2+Padding,
			y+textHeight/2+Padding/2,
		)
		draw.Draw(dst, box.Intersect(bounds), image.NewUniform(bg), image.Point{}, draw.Over)
	}

	fg, err := ParseCSSColor(style.Color)
	if err != nil {
		c.log.Debugw("skipping caption text, bad color",
			"segment", seg.ID,
			"color", style.Color,
		)
		return
	}

	var dotX int
	switch style.TextAlign {
	case segment.AlignLeft:
		dotX = x
	case segment.AlignRight:
		dotX = x - textWidth
	default:
		dotX = x - textWidth/2
	}

	// middle baseline: vertical glyph center sits on the anchor
	metrics := face.Metrics()
	dotY := y + (metrics.Ascent - metrics.Descent).Ceil()/2

	drawer.Src = image.NewUniform(fg)
	drawer.Dot = fixed.P(dotX, dotY)
	drawer.DrawString(seg.Text)
}

func clearSurface(dst *image.RGBA) {
	for i := range dst.Pix {
		dst.Pix[i] = 0
	}
}
