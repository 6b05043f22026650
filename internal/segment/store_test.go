package segment

import (
	"math"
	"testing"
)

func TestActiveAtNonOverlapping(t *testing.T) {
	store := NewStore()
	store.Add(New("segment-0", "first", 0, 2))
	store.Add(New("segment-1", "second", 3, 5))
	store.Add(New("segment-2", "third", 6, 8))

	tests := []struct {
		name   string
		time   float64
		wantID string
		wantOK bool
	}{
		{"inside first", 1.0, "segment-0", true},
		{"start boundary inclusive", 3.0, "segment-1", true},
		{"end boundary inclusive", 8.0, "segment-2", true},
		{"gap between segments", 2.5, "", false},
		{"before all", -1.0, "", false},
		{"after all", 9.0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, ok := store.ActiveAt(tt.time)
			if ok != tt.wantOK {
				t.Fatalf("ActiveAt(%v) ok = %v, want %v", tt.time, ok, tt.wantOK)
			}
			if ok && seg.ID != tt.wantID {
				t.Errorf("ActiveAt(%v) = %s, want %s", tt.time, seg.ID, tt.wantID)
			}
		})
	}
}

func TestActiveAtOverlapFirstWins(t *testing.T) {
	store := NewStore()
	store.Add(New("segment-0", "first", 1, 5))
	store.Add(New("segment-1", "second", 2, 6))

	seg, ok := store.ActiveAt(3.0)
	if !ok {
		t.Fatal("expected an active segment at t=3")
	}
	if seg.ID != "segment-0" {
		t.Errorf("overlap tie-break: got %s, want segment-0", seg.ID)
	}
}

func TestReversedIntervalNeverActive(t *testing.T) {
	store := NewStore()
	store.Add(New("segment-0", "backwards", 5, 2))

	for _, tm := range []float64{1, 2, 3.5, 5, 6} {
		if _, ok := store.ActiveAt(tm); ok {
			t.Errorf("segment with end < start reported active at t=%v", tm)
		}
	}
}

func TestUpdatePreservesIdentityAndOrder(t *testing.T) {
	store := NewStore()
	store.Add(New("segment-0", "a", 0, 1))
	store.Add(New("segment-1", "b", 1, 2))
	store.Add(New("segment-2", "c", 2, 3))

	text := "x"
	if !store.Update("segment-1", Update{Text: &text}) {
		t.Fatal("Update returned false for existing id")
	}

	all := store.All()
	wantIDs := []string{"segment-0", "segment-1", "segment-2"}
	for i, id := range wantIDs {
		if all[i].ID != id {
			t.Errorf("order changed: position %d = %s, want %s", i, all[i].ID, id)
		}
	}
	if all[1].Text != "x" {
		t.Errorf("text not updated: got %q", all[1].Text)
	}
	if all[1].Start != 1 || all[1].End != 2 {
		t.Errorf("untouched fields changed: start=%v end=%v", all[1].Start, all[1].End)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	store := NewStore()
	store.Add(New("segment-0", "a", 0, 1))

	text := "x"
	if store.Update("segment-99", Update{Text: &text}) {
		t.Error("Update returned true for unknown id")
	}
	if store.All()[0].Text != "a" {
		t.Error("store mutated by update of unknown id")
	}
}

func TestUpdateRejectsNonFiniteTimes(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			store.Add(New("segment-0", "a", 1, 2))
			v := tt.value
			store.Update("segment-0", Update{Start: &v, End: &v})
			seg := store.All()[0]
			if seg.Start != 1 || seg.End != 2 {
				t.Errorf("non-finite time reached the store: start=%v end=%v", seg.Start, seg.End)
			}
		})
	}
}

func TestUpdateClampsNegativeTimeAndPosition(t *testing.T) {
	store := NewStore()
	store.Add(New("segment-0", "a", 1, 2))

	start := -3.0
	x := 150
	y := -10
	store.Update("segment-0", Update{Start: &start, PositionX: &x, PositionY: &y})

	seg := store.All()[0]
	if seg.Start != 0 {
		t.Errorf("negative start not clamped: %v", seg.Start)
	}
	if seg.Style.Position.X != 100 || seg.Style.Position.Y != 0 {
		t.Errorf("position not clamped: %+v", seg.Style.Position)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Add(New("segment-0", "a", 0, 1))
	store.Add(New("segment-1", "b", 1, 2))

	store.Remove("segment-0")
	if store.Len() != 1 {
		t.Fatalf("expected 1 segment after remove, got %d", store.Len())
	}

	// removing again, and removing an unknown id, must not throw or mutate
	store.Remove("segment-0")
	store.Remove("never-existed")
	if store.Len() != 1 {
		t.Errorf("idempotent remove altered the store: len=%d", store.Len())
	}
	if store.All()[0].ID != "segment-1" {
		t.Errorf("wrong segment removed: %s", store.All()[0].ID)
	}
}

func TestObserverFiresOnEveryMutation(t *testing.T) {
	store := NewStore()
	calls := 0
	store.Subscribe(func() { calls++ })

	store.Add(New("segment-0", "a", 0, 1))
	text := "b"
	store.Update("segment-0", Update{Text: &text})
	store.Remove("segment-0")

	if calls != 3 {
		t.Errorf("expected 3 notifications, got %d", calls)
	}

	// no-op mutations do not notify
	store.Remove("segment-0")
	store.Update("segment-0", Update{Text: &text})
	if calls != 3 {
		t.Errorf("no-op mutation notified observers: %d calls", calls)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Add(New("segment-0", "a", 0, 1))

	snapshot := store.All()
	snapshot[0].Text = "mutated"

	if store.All()[0].Text != "a" {
		t.Error("All() exposed internal state")
	}
}
