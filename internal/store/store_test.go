package store

import (
	"testing"

	"github.com/wilbur182/zoomline/internal/timeline"
)

type fakeHistory struct {
	stack []timeline.Range
}

func (h *fakeHistory) Record(r timeline.Range) error {
	h.stack = append(h.stack, r)
	return nil
}

func (h *fakeHistory) Pop() (timeline.Range, bool, error) {
	if len(h.stack) == 0 {
		return timeline.Range{}, false, nil
	}
	r := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return r, true, nil
}

func TestStore_ProposeAndRead(t *testing.T) {
	s := New(timeline.Range{Start: 0, End: 1000}, Options{MinSelectionWidth: 50, ZeroOffset: 10})

	if s.Selection().Present {
		t.Error("new store should have no selection")
	}
	if got := s.MinSelectionWidth(); got != 50 {
		t.Errorf("MinSelectionWidth = %d, want 50", got)
	}
	if got := s.ZeroOffset(); got != 10 {
		t.Errorf("ZeroOffset = %d, want 10", got)
	}

	sel := timeline.Selection(100, 300, true)
	s.Propose(sel)
	if got := s.Selection(); got != sel {
		t.Errorf("Selection = %+v, want %+v", got, sel)
	}

	s.Propose(timeline.NoSelection)
	if s.Selection().Present {
		t.Error("NoSelection proposal should clear the selection")
	}
}

func TestStore_CommitRecordsHistory(t *testing.T) {
	h := &fakeHistory{}
	s := New(timeline.Range{Start: 0, End: 1000}, Options{History: h})

	s.Commit(100, 300)

	if got := s.Committed(); got != (timeline.Range{Start: 100, End: 300}) {
		t.Errorf("Committed = %v, want 100..300", got)
	}
	if len(h.stack) != 1 || h.stack[0] != (timeline.Range{Start: 0, End: 1000}) {
		t.Errorf("history = %+v, want the outgoing window 0..1000", h.stack)
	}
}

func TestStore_CommitRejectsInverted(t *testing.T) {
	s := New(timeline.Range{Start: 0, End: 1000}, Options{})

	s.Commit(300, 100)

	if got := s.Committed(); got != (timeline.Range{Start: 0, End: 1000}) {
		t.Errorf("inverted commit changed the window to %v", got)
	}
}

func TestStore_ZoomBack(t *testing.T) {
	h := &fakeHistory{}
	s := New(timeline.Range{Start: 0, End: 1000}, Options{History: h})

	s.Commit(100, 300)
	s.Commit(150, 250)
	s.Propose(timeline.Selection(160, 200, false))

	if !s.ZoomBack() {
		t.Fatal("ZoomBack should succeed with history recorded")
	}
	if got := s.Committed(); got != (timeline.Range{Start: 100, End: 300}) {
		t.Errorf("after first ZoomBack: %v, want 100..300", got)
	}
	if s.Selection().Present {
		t.Error("ZoomBack should clear the preview selection")
	}

	if !s.ZoomBack() {
		t.Fatal("second ZoomBack should succeed")
	}
	if got := s.Committed(); got != (timeline.Range{Start: 0, End: 1000}) {
		t.Errorf("after second ZoomBack: %v, want 0..1000", got)
	}

	if s.ZoomBack() {
		t.Error("ZoomBack with empty history should return false")
	}
}

func TestStore_ZoomBackWithoutHistory(t *testing.T) {
	s := New(timeline.Range{Start: 0, End: 1000}, Options{})
	if s.ZoomBack() {
		t.Error("ZoomBack without history should return false")
	}
}
