package segment

import "math"

// Update carries a partial set of segment fields; nil pointers leave the
// corresponding field untouched.
type Update struct {
	Text            *string
	Start           *float64
	End             *float64
	FontSize        *int
	FontFamily      *string
	Color           *string
	BackgroundColor *string
	PositionX       *int
	PositionY       *int
	TextAlign       *Align
	Bold            *bool
	Italic          *bool
	Enter           *Animation
	Exit            *Animation
}

// apply writes the populated fields onto seg. Non-finite times and invalid
// enum values are dropped so a bad form field can never corrupt the store;
// times are clamped to zero and positions to the 0-100 range.
func (u Update) apply(seg *Segment) {
	if u.Text != nil {
		seg.Text = *u.Text
	}
	if t, ok := finiteTime(u.Start); ok {
		seg.Start = t
	}
	if t, ok := finiteTime(u.End); ok {
		seg.End = t
	}
	if u.FontSize != nil && *u.FontSize > 0 {
		seg.Style.FontSize = *u.FontSize
	}
	if u.FontFamily != nil && *u.FontFamily != "" {
		seg.Style.FontFamily = *u.FontFamily
	}
	if u.Color != nil && *u.Color != "" {
		seg.Style.Color = *u.Color
	}
	if u.BackgroundColor != nil && *u.BackgroundColor != "" {
		seg.Style.BackgroundColor = *u.BackgroundColor
	}
	if u.PositionX != nil {
		seg.Style.Position.X = clampPercent(*u.PositionX)
	}
	if u.PositionY != nil {
		seg.Style.Position.Y = clampPercent(*u.PositionY)
	}
	if u.TextAlign != nil && u.TextAlign.Valid() {
		seg.Style.TextAlign = *u.TextAlign
	}
	if u.Bold != nil {
		seg.Style.Bold = *u.Bold
	}
	if u.Italic != nil {
		seg.Style.Italic = *u.Italic
	}
	if u.Enter != nil && u.Enter.Valid() {
		seg.Animation.Enter = *u.Enter
	}
	if u.Exit != nil && u.Exit.Valid() {
		seg.Animation.Exit = *u.Exit
	}
}

func finiteTime(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	t := *p
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}
	if t < 0 {
		t = 0
	}
	return t, true
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
