package timeline

// HandleKind identifies one of the three draggable hotspots used to edit an
// existing selection.
type HandleKind int

const (
	// HandleStart moves only the start boundary.
	HandleStart HandleKind = iota
	// HandleMove translates the whole selection.
	HandleMove
	// HandleEnd moves only the end boundary.
	HandleEnd
)

func (k HandleKind) String() string {
	switch k {
	case HandleStart:
		return "start"
	case HandleMove:
		return "move"
	case HandleEnd:
		return "end"
	}
	return "unknown"
}

// deltas maps a signed time delta to the (startDelta, endDelta) pair for the
// handle kind. This is the only place the three drag semantics differ.
func (k HandleKind) deltas(d Millis) (Millis, Millis) {
	switch k {
	case HandleStart:
		return d, 0
	case HandleMove:
		return d, d
	case HandleEnd:
		return 0, d
	}
	return 0, 0
}

// ResizeSelection applies a time delta to the selection recorded at gesture
// start and clamps the result into committed. The delta is always applied to
// the original selection, not the previous frame, so repeated samples cannot
// drift. End is clamped against the already-clamped start, so the result
// never inverts: start <= end holds for any delta.
func ResizeSelection(original, committed Range, k HandleKind, delta Millis) Range {
	sd, ed := k.deltas(delta)
	start := committed.Clamp(original.Start + sd)
	end := original.End + ed
	if end < start {
		end = start
	}
	if end > committed.End {
		end = committed.End
	}
	return Range{Start: start, End: end}
}
