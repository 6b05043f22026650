package timeline

import (
	"math"

	"github.com/reelforge/reelforge/internal/playback"
	"github.com/reelforge/reelforge/internal/segment"
)

// Box is one caption segment positioned on the proportional time axis,
// in percent of the axis width.
type Box struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	LeftPct  float64 `json:"leftPct"`
	WidthPct float64 `json:"widthPct"`
}

// Layout is a snapshot of the timeline: the full-clip track extent, every
// segment box and the playhead position.
type Layout struct {
	Duration    float64 `json:"duration"`
	CurrentTime float64 `json:"currentTime"`
	PlayheadPct float64 `json:"playheadPct"`
	Segments    []Box   `json:"segments"`
}

// View maps the segment store and playback clock onto a shared horizontal
// time axis spanning [0, duration]. It holds no state of its own; every
// layout is computed from live store and clock state.
type View struct {
	store *segment.Store
	clock *playback.Clock
}

func NewView(store *segment.Store, clock *playback.Clock) *View {
	return &View{store: store, clock: clock}
}

// Snapshot computes the current layout.
func (v *View) Snapshot() Layout {
	duration := v.clock.Duration()
	current := v.clock.CurrentTime()

	layout := Layout{
		Duration:    duration,
		CurrentTime: current,
		PlayheadPct: percentOf(current, duration),
	}

	for _, seg := range v.store.All() {
		layout.Segments = append(layout.Segments, Box{
			ID:       seg.ID,
			Label:    seg.Text,
			LeftPct:  percentOf(seg.Start, duration),
			WidthPct: percentOf(seg.End-seg.Start, duration),
		})
	}

	return layout
}

// Click converts a pointer position on the axis into a seek. The mapping
// is linear in pixel position with no snapping to segment boundaries.
func (v *View) Click(xPx, widthPx float64) error {
	return v.clock.Seek(TimeAt(xPx, widthPx, v.clock.Duration()))
}

// TimeAt maps a pixel offset on an axis of the given width to a time in
// [0, duration].
func TimeAt(xPx, widthPx, duration float64) float64 {
	if widthPx <= 0 || duration <= 0 || math.IsNaN(xPx) {
		return 0
	}
	t := xPx / widthPx * duration
	if t < 0 {
		return 0
	}
	if t > duration {
		return duration
	}
	return t
}

func percentOf(value, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	pct := value / duration * 100
	if math.IsNaN(pct) || pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
