// Package ui renders the timeline surface: track rows, the time axis, and
// the selection overlay with its drag handles.
package ui

import (
	"fmt"

	"github.com/wilbur182/zoomline/internal/mouse"
	"github.com/wilbur182/zoomline/internal/timeline"
)

// Mouse region identifiers for overlay hotspots.
const (
	RegionHandleStart = "handle-start"
	RegionHandleMove  = "handle-move"
	RegionHandleEnd   = "handle-end"
	RegionZoomButton  = "zoom-button"
)

// ZoomButtonLabel is the rendered zoom control text.
const ZoomButtonLabel = "[ zoom ]"

// OverlayInput is everything the overlay projection reads.
type OverlayInput struct {
	// Rect is the track area content rectangle.
	Rect      mouse.Rect
	Committed timeline.Range
	Selection timeline.PreviewSelection
	HoverX    int
	HasHover  bool
}

// Overlay is pure geometry: where the selection, its handles, the zoom
// control, and the hover guide sit on screen. Painting and hit testing
// both consume it, so what is clickable is exactly what is visible.
type Overlay struct {
	HasSelection bool

	// Selection span in absolute columns, [SelStartX, SelEndX).
	SelStartX int
	SelEndX   int

	// Handle hotspots, full height of the track area.
	HandleStart mouse.Rect
	HandleMove  mouse.Rect
	HandleEnd   mouse.Rect

	// Label is the selection duration, shown while the selection is being
	// modified. The zoom button takes its place once the drag ends.
	Label          string
	ShowLabel      bool
	ShowZoomButton bool
	ControlX       int // column where label or button renders, header row

	HoverX   int // absolute column of the hover guide
	HasHover bool
}

// BuildOverlay projects the selection state onto screen geometry.
func BuildOverlay(in OverlayInput) Overlay {
	var o Overlay
	rect := in.Rect
	if rect.W <= 0 {
		return o
	}

	if in.HasHover {
		o.HoverX = rect.X + in.HoverX
		o.HasHover = o.HoverX >= rect.X && o.HoverX < rect.X+rect.W
	}

	sel := in.Selection
	if !sel.Present {
		return o
	}
	o.HasSelection = true
	// A visible selection suppresses the hover guide.
	o.HasHover = false

	startX := rect.X + timeline.SpanWidth(sel.Start-in.Committed.Start, rect.W, in.Committed)
	endX := rect.X + timeline.SpanWidth(sel.End-in.Committed.Start, rect.W, in.Committed)
	if startX < rect.X {
		startX = rect.X
	}
	if endX > rect.X+rect.W {
		endX = rect.X + rect.W
	}
	if endX <= startX {
		// Keep at least one visible column so a tiny selection can still be
		// grabbed by its handles.
		endX = startX + 1
	}
	o.SelStartX = startX
	o.SelEndX = endX

	o.HandleStart = mouse.Rect{X: startX, Y: rect.Y, W: 1, H: rect.H}
	o.HandleEnd = mouse.Rect{X: endX - 1, Y: rect.Y, W: 1, H: rect.H}
	if endX-startX > 2 {
		o.HandleMove = mouse.Rect{X: startX + 1, Y: rect.Y, W: endX - startX - 2, H: rect.H}
	}

	o.Label = fmt.Sprintf("%dms", int64(sel.End-sel.Start))
	o.ShowLabel = sel.Modifying
	o.ShowZoomButton = !sel.Modifying

	// The control renders on the header row, pinned inside the track area.
	o.ControlX = startX
	controlW := len(ZoomButtonLabel)
	if o.ShowLabel {
		controlW = len(o.Label)
	}
	if max := rect.X + rect.W - controlW; o.ControlX > max {
		o.ControlX = max
	}
	if o.ControlX < rect.X {
		o.ControlX = rect.X
	}

	return o
}

// Hotspots registers the overlay's interactive regions on the hit map.
// The zoom button sits on the header row directly above the track area.
func (o Overlay) Hotspots(h *mouse.HitMap, headerY int) {
	if !o.HasSelection {
		return
	}
	if o.HandleMove.W > 0 {
		h.Add(RegionHandleMove, o.HandleMove, timeline.HandleMove)
	}
	h.Add(RegionHandleStart, o.HandleStart, timeline.HandleStart)
	h.Add(RegionHandleEnd, o.HandleEnd, timeline.HandleEnd)
	if o.ShowZoomButton {
		h.AddRect(RegionZoomButton, o.ControlX, headerY, len(ZoomButtonLabel), 1, nil)
	}
}
