package ui

import (
	"testing"

	"github.com/wilbur182/zoomline/internal/mouse"
	"github.com/wilbur182/zoomline/internal/timeline"
)

func TestBuildOverlay_NoSelection(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 0, Y: 1, W: 100, H: 4},
		Committed: timeline.Range{Start: 0, End: 1000},
	})

	if o.HasSelection {
		t.Error("no selection should project no overlay")
	}
	if o.HasHover {
		t.Error("no hover input should project no guide")
	}
}

func TestBuildOverlay_SelectionGeometry(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 10, Y: 2, W: 100, H: 4},
		Committed: timeline.Range{Start: 0, End: 1000},
		Selection: timeline.Selection(200, 600, false),
	})

	if !o.HasSelection {
		t.Fatal("selection should project")
	}
	if o.SelStartX != 30 || o.SelEndX != 70 {
		t.Errorf("selection columns = [%d, %d), want [30, 70)", o.SelStartX, o.SelEndX)
	}
	if o.HandleStart != (mouse.Rect{X: 30, Y: 2, W: 1, H: 4}) {
		t.Errorf("start handle = %+v", o.HandleStart)
	}
	if o.HandleEnd != (mouse.Rect{X: 69, Y: 2, W: 1, H: 4}) {
		t.Errorf("end handle = %+v", o.HandleEnd)
	}
	if o.HandleMove != (mouse.Rect{X: 31, Y: 2, W: 38, H: 4}) {
		t.Errorf("move handle = %+v", o.HandleMove)
	}
	if !o.ShowZoomButton || o.ShowLabel {
		t.Error("settled selection should show zoom button, not label")
	}
}

func TestBuildOverlay_ModifyingShowsLabel(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 0, Y: 0, W: 100, H: 2},
		Committed: timeline.Range{Start: 0, End: 1000},
		Selection: timeline.Selection(100, 350, true),
	})

	if !o.ShowLabel || o.ShowZoomButton {
		t.Error("modifying selection should show label, not zoom button")
	}
	if o.Label != "250ms" {
		t.Errorf("label = %q, want 250ms", o.Label)
	}
}

func TestBuildOverlay_TinySelectionKeepsOneColumn(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 0, Y: 0, W: 100, H: 2},
		Committed: timeline.Range{Start: 0, End: 100000},
		Selection: timeline.Selection(50, 60, false),
	})

	if o.SelEndX != o.SelStartX+1 {
		t.Errorf("tiny selection columns = [%d, %d), want one column",
			o.SelStartX, o.SelEndX)
	}
	if o.HandleMove.W != 0 {
		t.Errorf("tiny selection should have no move hotspot, got %+v", o.HandleMove)
	}
}

func TestBuildOverlay_ControlPinnedInsideTrackArea(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 0, Y: 0, W: 50, H: 2},
		Committed: timeline.Range{Start: 0, End: 1000},
		Selection: timeline.Selection(980, 1000, false),
	})

	if o.ControlX+len(ZoomButtonLabel) > 50 {
		t.Errorf("control at %d overflows 50-column area", o.ControlX)
	}
}

func TestBuildOverlay_HoverGuide(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 5, Y: 0, W: 50, H: 2},
		Committed: timeline.Range{Start: 0, End: 1000},
		HoverX:    10,
		HasHover:  true,
	})

	if !o.HasHover || o.HoverX != 15 {
		t.Errorf("hover = (%d, %v), want (15, true)", o.HoverX, o.HasHover)
	}
}

func TestBuildOverlay_SelectionSuppressesHover(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 0, Y: 0, W: 100, H: 2},
		Committed: timeline.Range{Start: 0, End: 1000},
		Selection: timeline.Selection(100, 300, false),
		HoverX:    50,
		HasHover:  true,
	})

	if o.HasHover {
		t.Error("hover guide should be suppressed while a selection shows")
	}
}

func TestBuildOverlay_ZeroWidth(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 0, Y: 0, W: 0, H: 2},
		Committed: timeline.Range{Start: 0, End: 1000},
		Selection: timeline.Selection(100, 300, false),
	})

	if o.HasSelection {
		t.Error("zero-width area should project nothing")
	}
}

func TestOverlay_Hotspots(t *testing.T) {
	o := BuildOverlay(OverlayInput{
		Rect:      mouse.Rect{X: 0, Y: 2, W: 100, H: 4},
		Committed: timeline.Range{Start: 0, End: 1000},
		Selection: timeline.Selection(200, 600, false),
	})

	h := mouse.NewHitMap()
	o.Hotspots(h, 1)

	// Edge handles sit on top of the move region.
	r := h.Test(20, 3)
	if r == nil || r.ID != RegionHandleStart {
		t.Errorf("hit at start edge = %+v, want %s", r, RegionHandleStart)
	}
	r = h.Test(59, 3)
	if r == nil || r.ID != RegionHandleEnd {
		t.Errorf("hit at end edge = %+v, want %s", r, RegionHandleEnd)
	}
	r = h.Test(40, 3)
	if r == nil || r.ID != RegionHandleMove {
		t.Errorf("hit in middle = %+v, want %s", r, RegionHandleMove)
	}
	if kind, ok := r.Data.(timeline.HandleKind); !ok || kind != timeline.HandleMove {
		t.Errorf("move hotspot data = %+v, want HandleMove", r.Data)
	}
	r = h.Test(o.ControlX, 1)
	if r == nil || r.ID != RegionZoomButton {
		t.Errorf("hit on header control = %+v, want %s", r, RegionZoomButton)
	}
}
