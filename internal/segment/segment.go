package segment

// horizontal alignment of caption text
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

func (a Align) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// enter/exit transition kind; carried as data, the compositor does not
// currently render transitions
type Animation string

const (
	AnimationNone      Animation = "none"
	AnimationFade      Animation = "fade"
	AnimationSlideUp   Animation = "slide-up"
	AnimationSlideDown Animation = "slide-down"
)

func (a Animation) Valid() bool {
	switch a {
	case AnimationNone, AnimationFade, AnimationSlideUp, AnimationSlideDown:
		return true
	}
	return false
}

// anchor point as percentages of the frame, 0-100 each axis
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// visual styling for a caption segment
type Style struct {
	FontSize        int      `json:"fontSize" yaml:"font_size"`
	FontFamily      string   `json:"fontFamily" yaml:"font_family"`
	Color           string   `json:"color" yaml:"color"`
	BackgroundColor string   `json:"backgroundColor" yaml:"background_color"`
	Position        Position `json:"position" yaml:"position"`
	TextAlign       Align    `json:"textAlign" yaml:"text_align"`
	Bold            bool     `json:"bold" yaml:"bold"`
	Italic          bool     `json:"italic" yaml:"italic"`
}

// enter/exit animation pair
type Transition struct {
	Enter Animation `json:"enter" yaml:"enter"`
	Exit  Animation `json:"exit" yaml:"exit"`
}

// Segment is an editable, time-bounded unit of on-screen text.
// Start and End are seconds; End < Start is allowed and simply makes
// the segment never active.
type Segment struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Start     float64    `json:"startTime"`
	End       float64    `json:"endTime"`
	Style     Style      `json:"style"`
	Animation Transition `json:"animation"`
}

// style applied to segments created from a transcript or by hand
func DefaultStyle() Style {
	return Style{
		FontSize:        48,
		FontFamily:      "Inter",
		Color:           "#ffffff",
		BackgroundColor: "rgba(0, 0, 0, 0.7)",
		Position:        Position{X: 50, Y: 85},
		TextAlign:       AlignCenter,
		Bold:            true,
		Italic:          false,
	}
}

func DefaultTransition() Transition {
	return Transition{Enter: AnimationFade, Exit: AnimationFade}
}

// New creates a segment with the default style and animation.
func New(id, text string, start, end float64) Segment {
	return Segment{
		ID:        id,
		Text:      text,
		Start:     start,
		End:       end,
		Style:     DefaultStyle(),
		Animation: DefaultTransition(),
	}
}

// Active reports whether t falls inside the segment's bounds, inclusive
// on both ends.
func (s Segment) Active(t float64) bool {
	return s.Start <= t && t <= s.End
}

func (s Segment) Duration() float64 {
	return s.End - s.Start
}
