package timeline

import (
	"log/slog"

	"github.com/wilbur182/zoomline/internal/mouse"
)

// gestureState enumerates the phases of one pointer-down-to-up cycle.
type gestureState int

const (
	// stateIdle: no gesture in progress.
	stateIdle gestureState = iota
	// stateProbing: pointer down inside the container, the drag may or may
	// not become a selection yet.
	stateProbing
	// stateActive: the drag crossed the minimum-width threshold and is
	// emitting modifying selection updates.
	stateActive
	// stateHandle: an existing selection is being edited via a drag handle.
	stateHandle
)

// Controller owns the active selection gesture, if any. It reads the
// committed window and configuration from the store, converts pointer
// samples to time via the coordinate mapping, and emits selection-update
// and range-commit effects back into the store.
//
// All methods run synchronously on the event loop; the controller holds no
// locks and processes events strictly in delivery order.
type Controller struct {
	store  Store
	bounds func() mouse.Rect
	log    *slog.Logger

	state gestureState

	// Container rect captured at gesture start. The surrounding layout may
	// shift between gestures, so it is recomputed on every pointer-down and
	// never reused across gestures.
	rect mouse.Rect

	// Create-selection gesture.
	originTime Millis

	// Handle gesture.
	handle   HandleKind
	original Range
	originX  int

	// Hover guide sample, only maintained while idle.
	hoverX   int
	hasHover bool

	// Capture bookkeeping. While captured, the app routes every motion and
	// release sample here regardless of what is under the pointer.
	captured int
	installs int
	releases int
}

// NewController creates a gesture controller. bounds must return the
// container's current content rectangle; it is called fresh at every
// gesture start and idle hover sample.
func NewController(store Store, bounds func() mouse.Rect, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		store:  store,
		bounds: bounds,
		log:    log,
	}
}

// Capturing reports whether a gesture currently owns the pointer.
func (c *Controller) Capturing() bool {
	return c.captured > 0
}

// Hover returns the hover guide offset within the container, if any.
// Only meaningful while no gesture is active.
func (c *Controller) Hover() (int, bool) {
	return c.hoverX, c.hasHover
}

// PointerDown begins a create-selection gesture. Events with a non-primary
// button or a point outside the container's content rectangle are silently
// ignored. Returns true if a gesture started.
func (c *Controller) PointerDown(ev *mouse.PointerEvent) bool {
	if c.state != stateIdle {
		return false
	}
	if !ev.PrimaryPress() {
		return false
	}
	rect := c.bounds()
	if !rect.Contains(ev.X, ev.Y) {
		return false
	}
	c.rect = rect
	c.originTime = TimeAt(ev.X-rect.X, rect.W, c.store.Committed())
	c.state = stateProbing
	c.hasHover = false
	c.installCapture()
	c.log.Debug("selection gesture started", "origin", int64(c.originTime))
	return true
}

// BeginHandleDrag begins editing the existing selection via one of the
// three drag handles. No-op when a gesture is already active or no
// selection is present. The press is consumed so it cannot also start a
// create gesture underneath the handle.
func (c *Controller) BeginHandleDrag(kind HandleKind, ev *mouse.PointerEvent) bool {
	if c.state != stateIdle {
		return false
	}
	if !ev.PrimaryPress() {
		return false
	}
	sel := c.store.Selection()
	if !sel.Present {
		return false
	}
	rect := c.bounds()
	if rect.W <= 0 {
		return false
	}
	c.rect = rect
	c.originX = ev.X
	c.original = sel.Range()
	c.handle = kind
	c.state = stateHandle
	c.hasHover = false
	c.installCapture()
	ev.Consume()
	c.log.Debug("handle drag started", "handle", kind.String(), "selection", c.original.String())
	return true
}

// PointerMove feeds one motion sample into the active gesture, or updates
// the hover guide when idle.
func (c *Controller) PointerMove(ev *mouse.PointerEvent) {
	switch c.state {
	case stateIdle:
		rect := c.bounds()
		if rect.W <= 0 || !rect.Contains(ev.X, ev.Y) {
			c.hasHover = false
			return
		}
		c.hoverX = ev.X - rect.X
		c.hasHover = true

	case stateProbing, stateActive:
		if c.rect.W <= 0 {
			return
		}
		start, end := c.spanAt(ev.X)
		if c.state == stateProbing && end-start < c.store.MinSelectionWidth() {
			// Below threshold: emit nothing, no flicker of a sub-threshold
			// selection.
			return
		}
		c.state = stateActive
		c.store.Propose(Selection(start, end, true))

	case stateHandle:
		if c.rect.W <= 0 {
			return
		}
		r := c.resizeAt(ev.X)
		c.store.Propose(Selection(r.Start, r.End, true))
	}
}

// PointerUp ends the active gesture. The capture is released on every path.
func (c *Controller) PointerUp(ev *mouse.PointerEvent) {
	switch c.state {
	case stateIdle:
		return

	case stateProbing:
		// The drag never became a selection. A release outside the current
		// selection clears it; a release inside leaves it untouched. Either
		// way the event keeps propagating so sibling widgets observe it.
		sel := c.store.Selection()
		if sel.Present {
			t := TimeAt(ev.X-c.rect.X, c.rect.W, c.store.Committed())
			if t < sel.Start || t >= sel.End {
				c.store.Propose(NoSelection)
			}
		}

	case stateActive:
		start, end := c.spanAt(ev.X)
		c.store.Propose(Selection(start, end, false))
		ev.Consume()
		c.log.Debug("selection finished", "start", int64(start), "end", int64(end))

	case stateHandle:
		r := c.resizeAt(ev.X)
		c.store.Propose(Selection(r.Start, r.End, false))
		ev.Consume()
	}
	c.reset()
}

// Cancel force-ends any active gesture without emitting updates. The
// capture is still released exactly once.
func (c *Controller) Cancel() {
	if c.state == stateIdle {
		return
	}
	c.reset()
}

// Zoom commits the current selection as the new displayed window, shifted
// by the store's zero offset. No-op without a selection. The preview is
// cleared as part of the commit so no stale highlight spans the new window.
func (c *Controller) Zoom() {
	if c.state != stateIdle {
		return
	}
	sel := c.store.Selection()
	if !sel.Present {
		return
	}
	z := c.store.ZeroOffset()
	c.log.Debug("zoom commit", "start", int64(sel.Start-z), "end", int64(sel.End-z))
	c.store.Commit(sel.Start-z, sel.End-z)
	c.store.Propose(NoSelection)
}

// spanAt derives the ordered, clamped selection span between the gesture
// origin and the pointer position x.
func (c *Controller) spanAt(x int) (Millis, Millis) {
	committed := c.store.Committed()
	current := TimeAt(x-c.rect.X, c.rect.W, committed)
	start, end := c.originTime, current
	if start > end {
		start, end = end, start
	}
	return committed.Clamp(start), committed.Clamp(end)
}

// resizeAt applies the handle delta for pointer position x to the selection
// recorded at gesture start.
func (c *Controller) resizeAt(x int) Range {
	committed := c.store.Committed()
	delta := DeltaTime(x-c.originX, c.rect.W, committed)
	return ResizeSelection(c.original, committed, c.handle, delta)
}

func (c *Controller) reset() {
	c.state = stateIdle
	c.rect = mouse.Rect{}
	c.originTime = 0
	c.originX = 0
	c.original = Range{}
	c.releaseCapture()
}

// installCapture claims the pointer for the current gesture. Installed
// exactly once per gesture.
func (c *Controller) installCapture() {
	c.captured++
	c.installs++
}

// releaseCapture drops the pointer claim. Releasing with nothing installed
// is a no-op, so every exit path may call it unconditionally.
func (c *Controller) releaseCapture() {
	if c.captured == 0 {
		return
	}
	c.captured = 0
	c.releases++
}
