// Package timeline implements the pixel/time coordinate mapping and the
// pointer gesture state machine behind zoomline's drag-to-zoom selection.
package timeline

import "fmt"

// Millis is a point in time (or a duration) in milliseconds.
type Millis int64

// Range is a half-open-feeling but inclusive time window [Start, End].
// Callers must keep Start <= End.
type Range struct {
	Start Millis
	End   Millis
}

// Duration returns the length of the range.
func (r Range) Duration() Millis {
	return r.End - r.Start
}

// Contains reports whether t lies within [Start, End].
func (r Range) Contains(t Millis) bool {
	return t >= r.Start && t <= r.End
}

// Clamp constrains t to [Start, End].
func (r Range) Clamp(t Millis) Millis {
	if t < r.Start {
		return r.Start
	}
	if t > r.End {
		return r.End
	}
	return t
}

func (r Range) String() string {
	return fmt.Sprintf("%dms..%dms", int64(r.Start), int64(r.End))
}

// PreviewSelection is a proposed, not-yet-committed sub-range of the
// committed window. The zero value means "no selection".
// Modifying is true while the drag that produced or is editing the selection
// is still in progress.
type PreviewSelection struct {
	Present   bool
	Start     Millis
	End       Millis
	Modifying bool
}

// NoSelection is the empty preview value proposed to clear a selection.
var NoSelection = PreviewSelection{}

// Selection builds a present preview value.
func Selection(start, end Millis, modifying bool) PreviewSelection {
	return PreviewSelection{Present: true, Start: start, End: end, Modifying: modifying}
}

// Range returns the selected window. Only meaningful when Present.
func (s PreviewSelection) Range() Range {
	return Range{Start: s.Start, End: s.End}
}

// Store is the surface the gesture controller reads from and drives.
// Propose and Commit are fire-and-forget effects; the controller never
// consumes a return value from them.
type Store interface {
	// Committed returns the currently displayed time window.
	Committed() Range
	// Selection returns the current preview selection, if any.
	Selection() PreviewSelection
	// MinSelectionWidth is the span a nascent drag must reach before it
	// counts as a selection rather than a click.
	MinSelectionWidth() Millis
	// ZeroOffset is the baseline subtracted from both edges on commit.
	ZeroOffset() Millis
	// Propose replaces the preview selection.
	Propose(PreviewSelection)
	// Commit requests a change of the committed window itself.
	Commit(start, end Millis)
}
