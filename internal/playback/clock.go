package playback

import (
	"errors"
	"math"
	"sync"
)

// playback state of the wrapped media source
type State string

const (
	StateUnloaded State = "unloaded"
	StateLoaded   State = "loaded"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateEnded    State = "ended"
)

var ErrNotLoaded = errors.New("media not loaded")

// TickFunc runs after every position change with the new time.
type TickFunc func(t float64)

// Clock wraps the media element's native time source. It holds no timer
// of its own: position advances only when the playback engine reports a
// time update, and commands mirror what the engine is told to do.
// Duration is 0 until metadata loads.
type Clock struct {
	mu       sync.RWMutex
	state    State
	current  float64
	duration float64
	tickFns  []TickFunc
}

func NewClock() *Clock {
	return &Clock{state: StateUnloaded}
}

// LoadedMetadata records the media duration and moves the clock out of
// the unloaded state.
func (c *Clock) LoadedMetadata(duration float64) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		duration = 0
	}
	c.mu.Lock()
	c.duration = duration
	if c.state == StateUnloaded {
		c.state = StateLoaded
	}
	c.mu.Unlock()
}

// TimeUpdate records a native playback tick. Ticks arrive several times a
// second while playing, at a rate controlled by the playback engine.
func (c *Clock) TimeUpdate(t float64) {
	c.mu.Lock()
	if c.state == StateUnloaded {
		c.mu.Unlock()
		return
	}
	t = c.clamp(t)
	c.current = t
	c.mu.Unlock()
	c.tick(t)
}

// Play transitions to the playing state. Playing again from the ended
// state resumes at the current position; the engine decides whether to
// rewind first.
func (c *Clock) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateUnloaded {
		return ErrNotLoaded
	}
	c.state = StatePlaying
	return nil
}

func (c *Clock) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateUnloaded {
		return ErrNotLoaded
	}
	if c.state == StatePlaying {
		c.state = StatePaused
	}
	return nil
}

// Seek moves the position, clamped to [0, duration]. Legal in any state
// after load and never changes the play/pause state, except that seeking
// away from the end leaves the ended state for paused.
func (c *Clock) Seek(t float64) error {
	c.mu.Lock()
	if c.state == StateUnloaded {
		c.mu.Unlock()
		return ErrNotLoaded
	}
	if math.IsNaN(t) {
		c.mu.Unlock()
		return nil
	}
	t = c.clamp(t)
	c.current = t
	if c.state == StateEnded && t < c.duration {
		c.state = StatePaused
	}
	c.mu.Unlock()
	c.tick(t)
	return nil
}

// Ended records the native end event: equivalent to paused at
// t = duration.
func (c *Clock) Ended() {
	c.mu.Lock()
	if c.state == StateUnloaded {
		c.mu.Unlock()
		return
	}
	c.state = StateEnded
	c.current = c.duration
	t := c.current
	c.mu.Unlock()
	c.tick(t)
}

func (c *Clock) CurrentTime() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Clock) Duration() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.duration
}

func (c *Clock) IsPlaying() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StatePlaying
}

func (c *Clock) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// OnTick registers fn to run after every position change.
func (c *Clock) OnTick(fn TickFunc) {
	c.mu.Lock()
	c.tickFns = append(c.tickFns, fn)
	c.mu.Unlock()
}

func (c *Clock) clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if c.duration > 0 && t > c.duration {
		return c.duration
	}
	return t
}

func (c *Clock) tick(t float64) {
	c.mu.RLock()
	fns := make([]TickFunc, len(c.tickFns))
	copy(fns, c.tickFns)
	c.mu.RUnlock()
	for _, fn := range fns {
		fn(t)
	}
}
