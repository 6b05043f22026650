package segment

import "sync"

// Observer is invoked after every store mutation.
type Observer func()

// Store is the ordered, in-memory collection of caption segments. Order is
// insertion order and is the tie-break for overlapping segments: the first
// segment containing a time wins. All methods are safe for concurrent use;
// observers run outside the lock.
type Store struct {
	mu        sync.RWMutex
	segments  []Segment
	observers []Observer
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a segment to the end of the collection. The caller is
// expected to supply a fresh id.
func (s *Store) Add(seg Segment) {
	s.mu.Lock()
	s.segments = append(s.segments, seg)
	s.mu.Unlock()
	s.notify()
}

// AddAll appends segments in order, notifying observers once.
func (s *Store) AddAll(segs []Segment) {
	s.mu.Lock()
	s.segments = append(s.segments, segs...)
	s.mu.Unlock()
	s.notify()
}

// Update applies the populated fields of u to the segment with the given
// id, preserving its identity and position in order. Returns false without
// mutating anything when the id is absent.
func (s *Store) Update(id string, u Update) bool {
	s.mu.Lock()
	found := false
	for i := range s.segments {
		if s.segments[i].ID == id {
			u.apply(&s.segments[i])
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
	return found
}

// Remove deletes the segment with the given id. Removing an unknown id is
// a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.segments {
		if s.segments[i].ID == id {
			s.segments = append(s.segments[:i], s.segments[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.notify()
	}
}

// Get returns the segment with the given id.
func (s *Store) Get(id string) (Segment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, seg := range s.segments {
		if seg.ID == id {
			return seg, true
		}
	}
	return Segment{}, false
}

// ActiveAt returns the first segment, in store order, whose bounds contain
// t. At most one segment is ever reported active.
func (s *Store) ActiveAt(t float64) (Segment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, seg := range s.segments {
		if seg.Active(t) {
			return seg, true
		}
	}
	return Segment{}, false
}

// All returns a copy of the current segments in store order.
func (s *Store) All() []Segment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.segments)
}

// Subscribe registers fn to run after every mutation. Subscriptions cannot
// be removed; the store lives as long as the editing session.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	obs := make([]Observer, len(s.observers))
	copy(obs, s.observers)
	s.mu.RUnlock()
	for _, fn := range obs {
		fn()
	}
}
