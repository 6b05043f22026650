package editor

import (
	"fmt"
	"sync"
	"time"

	"github.com/reelforge/reelforge/internal/logging"
	"github.com/reelforge/reelforge/internal/playback"
	"github.com/reelforge/reelforge/internal/segment"
)

// default extent in seconds for a segment added at the playhead
const newSegmentDuration = 2.0

const newSegmentText = "New text segment"

// Editor ties the segment store to the playback clock and exposes the
// operations behind the per-segment panels: every field edit writes
// straight through to the store, with no batching.
type Editor struct {
	log   *logging.Logger
	store *segment.Store
	clock *playback.Clock

	idMu sync.Mutex
}

func New(store *segment.Store, clock *playback.Clock, log *logging.Logger) *Editor {
	if log == nil {
		log = logging.NewNop()
	}
	return &Editor{log: log, store: store, clock: clock}
}

func (e *Editor) Store() *segment.Store  { return e.store }
func (e *Editor) Clock() *playback.Clock { return e.clock }

// AddSegment creates a segment at the current playback time with the
// default two second extent, default text and default style.
func (e *Editor) AddSegment() segment.Segment {
	t := e.clock.CurrentTime()
	seg := segment.New(e.newSegmentID(), newSegmentText, t, t+newSegmentDuration)
	e.store.Add(seg)
	e.log.Debugw("segment added", "id", seg.ID, "start", seg.Start, "end", seg.End)
	return seg
}

func (e *Editor) DeleteSegment(id string) {
	e.store.Remove(id)
	e.log.Debugw("segment deleted", "id", id)
}

// Apply writes a partial update through to the store. Returns false when
// the id is unknown; that is not an error for the UI, the panel just
// went stale.
func (e *Editor) Apply(id string, u segment.Update) bool {
	ok := e.store.Update(id, u)
	if !ok {
		e.log.Debugw("update for unknown segment", "id", id)
	}
	return ok
}

func (e *Editor) SetText(id, text string) bool {
	return e.Apply(id, segment.Update{Text: &text})
}

func (e *Editor) SetStart(id string, start float64) bool {
	return e.Apply(id, segment.Update{Start: &start})
}

func (e *Editor) SetEnd(id string, end float64) bool {
	return e.Apply(id, segment.Update{End: &end})
}

// SetFontSize clamps to the editor's 20-80px slider range before writing.
func (e *Editor) SetFontSize(id string, size int) bool {
	if size < 20 {
		size = 20
	}
	if size > 80 {
		size = 80
	}
	return e.Apply(id, segment.Update{FontSize: &size})
}

// ActiveSegmentID returns the id of the segment active at the current
// playback time, or "" when none is. Panels use this to flag themselves
// while scrubbing or playing.
func (e *Editor) ActiveSegmentID() string {
	seg, ok := e.store.ActiveAt(e.clock.CurrentTime())
	if !ok {
		return ""
	}
	return seg.ID
}

func (e *Editor) TogglePlayback() error {
	if e.clock.IsPlaying() {
		return e.clock.Pause()
	}
	return e.clock.Play()
}

func (e *Editor) SeekTo(t float64) error {
	return e.clock.Seek(t)
}

// Panel is the view model for one segment card.
type Panel struct {
	Segment segment.Segment `json:"segment"`
	Active  bool            `json:"active"`
}

// Panels returns one panel per segment in store order, flagging the one
// whose time range contains the playhead.
func (e *Editor) Panels() []Panel {
	activeID := e.ActiveSegmentID()
	segments := e.store.All()

	panels := make([]Panel, len(segments))
	for i, seg := range segments {
		panels[i] = Panel{
			Segment: seg,
			Active:  seg.ID == activeID,
		}
	}
	return panels
}

// newSegmentID derives a fresh id from the wall clock, bumping past any
// collision with an existing segment.
func (e *Editor) newSegmentID() string {
	e.idMu.Lock()
	defer e.idMu.Unlock()

	n := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("segment-%d", n)
		if _, exists := e.store.Get(id); !exists {
			return id
		}
		n++
	}
}
