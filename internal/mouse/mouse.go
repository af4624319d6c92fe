package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect represents a rectangular region in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the point (x, y) is within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named rectangular hit region with associated data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap tracks hit regions for pointer hit testing. It is rebuilt on every
// render so region positions always match what is on screen.
type HitMap struct {
	regions []Region
}

// NewHitMap creates a new empty HitMap.
func NewHitMap() *HitMap {
	return &HitMap{
		regions: make([]Region, 0, 16),
	}
}

// Clear removes all regions from the hit map.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Add adds a new region to the hit map.
func (h *HitMap) Add(id string, rect Rect, data any) {
	h.regions = append(h.regions, Region{
		ID:   id,
		Rect: rect,
		Data: data,
	})
}

// AddRect adds a region using individual coordinates.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: height}, data)
}

// Test returns the first region containing the point, or nil if none.
func (h *HitMap) Test(x, y int) *Region {
	// Test in reverse order so later (topmost) regions take priority
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns a copy of all registered regions (for testing).
func (h *HitMap) Regions() []Region {
	return append([]Region(nil), h.regions...)
}

// PointerEvent is a normalized pointer sample delivered to gesture handlers.
// Handlers mark an event consumed to stop it from reaching sibling widgets;
// an unconsumed release keeps propagating through the hit map.
type PointerEvent struct {
	X, Y     int
	Button   tea.MouseButton
	consumed bool
}

// FromMsg normalizes a bubbletea mouse message into a PointerEvent.
func FromMsg(msg tea.MouseMsg) *PointerEvent {
	return &PointerEvent{
		X:      msg.X,
		Y:      msg.Y,
		Button: msg.Button,
	}
}

// Primary reports whether the event uses the primary (left) button.
// Motion and release samples carry ButtonNone and count as primary so that a
// captured gesture keeps receiving them.
func (e *PointerEvent) Primary() bool {
	return e.Button == tea.MouseButtonLeft || e.Button == tea.MouseButtonNone
}

// PrimaryPress reports whether the event is a press of the primary button.
func (e *PointerEvent) PrimaryPress() bool {
	return e.Button == tea.MouseButtonLeft
}

// Consume marks the event as handled. Further propagation must stop.
func (e *PointerEvent) Consume() {
	e.consumed = true
}

// Consumed reports whether a handler claimed this event.
func (e *PointerEvent) Consumed() bool {
	return e.consumed
}
