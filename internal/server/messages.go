package server

import (
	"encoding/json"
	"fmt"

	"github.com/reelforge/reelforge/internal/editor"
	"github.com/reelforge/reelforge/internal/playback"
	"github.com/reelforge/reelforge/internal/segment"
	"github.com/reelforge/reelforge/internal/timeline"
)

// Event is a message from the browser shell: a native video element
// event, a transport command or a panel edit.
type Event struct {
	Type string `json:"type"`

	// timeupdate / seek / loadedmetadata
	Time     float64 `json:"time,omitempty"`
	Duration float64 `json:"duration,omitempty"`

	// timeline_click
	X     float64 `json:"x,omitempty"`
	Width float64 `json:"width,omitempty"`

	// segment operations
	ID    string        `json:"id,omitempty"`
	Patch *SegmentPatch `json:"patch,omitempty"`
}

// SegmentPatch is the wire form of a partial segment update; absent
// fields stay untouched.
type SegmentPatch struct {
	Text            *string  `json:"text,omitempty"`
	Start           *float64 `json:"startTime,omitempty"`
	End             *float64 `json:"endTime,omitempty"`
	FontSize        *int     `json:"fontSize,omitempty"`
	FontFamily      *string  `json:"fontFamily,omitempty"`
	Color           *string  `json:"color,omitempty"`
	BackgroundColor *string  `json:"backgroundColor,omitempty"`
	PositionX       *int     `json:"positionX,omitempty"`
	PositionY       *int     `json:"positionY,omitempty"`
	TextAlign       *string  `json:"textAlign,omitempty"`
	Bold            *bool    `json:"bold,omitempty"`
	Italic          *bool    `json:"italic,omitempty"`
	Enter           *string  `json:"enter,omitempty"`
	Exit            *string  `json:"exit,omitempty"`
}

func (p *SegmentPatch) toUpdate() segment.Update {
	u := segment.Update{
		Text:            p.Text,
		Start:           p.Start,
		End:             p.End,
		FontSize:        p.FontSize,
		FontFamily:      p.FontFamily,
		Color:           p.Color,
		BackgroundColor: p.BackgroundColor,
		PositionX:       p.PositionX,
		PositionY:       p.PositionY,
		Bold:            p.Bold,
		Italic:          p.Italic,
	}
	if p.TextAlign != nil {
		align := segment.Align(*p.TextAlign)
		u.TextAlign = &align
	}
	if p.Enter != nil {
		anim := segment.Animation(*p.Enter)
		u.Enter = &anim
	}
	if p.Exit != nil {
		anim := segment.Animation(*p.Exit)
		u.Exit = &anim
	}
	return u
}

// Snapshot is the state pushed to every connected shell after each
// mutation or playback tick.
type Snapshot struct {
	Type        string          `json:"type"`
	State       playback.State  `json:"state"`
	CurrentTime float64         `json:"currentTime"`
	Duration    float64         `json:"duration"`
	Playing     bool            `json:"playing"`
	Panels      []editor.Panel  `json:"panels"`
	Timeline    timeline.Layout `json:"timeline"`
}

func decodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("malformed event: %w", err)
	}
	if ev.Type == "" {
		return Event{}, fmt.Errorf("event missing type")
	}
	return ev, nil
}
