// Package store owns the application state the timeline widget reads and
// proposes updates to: the committed time window, the preview selection,
// and the selection configuration.
package store

import (
	"log/slog"

	"github.com/wilbur182/zoomline/internal/timeline"
)

// History persists committed windows so a zoom can be undone. Implemented
// by the sqlite-backed history store; nil disables recording.
type History interface {
	Record(r timeline.Range) error
	Pop() (timeline.Range, bool, error)
}

// Options configures a Store.
type Options struct {
	ZeroOffset        timeline.Millis
	MinSelectionWidth timeline.Millis
	History           History
	Logger            *slog.Logger
}

// Store is the single owner of committed range and preview selection. All
// access happens on the event loop, so there is no locking.
type Store struct {
	log *slog.Logger

	committed timeline.Range
	selection timeline.PreviewSelection

	zeroOffset        timeline.Millis
	minSelectionWidth timeline.Millis

	history History
}

// New creates a store displaying the given initial window.
func New(committed timeline.Range, opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		log:               log,
		committed:         committed,
		zeroOffset:        opts.ZeroOffset,
		minSelectionWidth: opts.MinSelectionWidth,
		history:           opts.History,
	}
}

// Committed returns the currently displayed time window.
func (s *Store) Committed() timeline.Range {
	return s.committed
}

// Selection returns the current preview selection.
func (s *Store) Selection() timeline.PreviewSelection {
	return s.selection
}

// MinSelectionWidth returns the drag threshold in time units.
func (s *Store) MinSelectionWidth() timeline.Millis {
	return s.minSelectionWidth
}

// ZeroOffset returns the baseline subtracted from commit edges.
func (s *Store) ZeroOffset() timeline.Millis {
	return s.zeroOffset
}

// Propose replaces the preview selection. Fire-and-forget: the proposer
// never learns whether the value changed anything.
func (s *Store) Propose(sel timeline.PreviewSelection) {
	s.selection = sel
}

// Commit swaps in a new committed window. The outgoing window is pushed to
// history so ZoomBack can restore it.
func (s *Store) Commit(start, end timeline.Millis) {
	if end < start {
		// Malformed commits come from nowhere in the core; refuse rather
		// than display an inverted window.
		s.log.Warn("rejecting inverted commit", "start", int64(start), "end", int64(end))
		return
	}
	if s.history != nil {
		if err := s.history.Record(s.committed); err != nil {
			s.log.Warn("recording zoom history failed", "err", err)
		}
	}
	s.log.Debug("window committed", "window", timeline.Range{Start: start, End: end}.String())
	s.committed = timeline.Range{Start: start, End: end}
}

// ZoomBack restores the most recently recorded committed window. Returns
// false when history is disabled or empty. Any preview selection is
// cleared, since it was made against the outgoing window.
func (s *Store) ZoomBack() bool {
	if s.history == nil {
		return false
	}
	prev, ok, err := s.history.Pop()
	if err != nil {
		s.log.Warn("reading zoom history failed", "err", err)
		return false
	}
	if !ok {
		return false
	}
	s.committed = prev
	s.selection = timeline.NoSelection
	return true
}

// SetMinSelectionWidth applies a config reload.
func (s *Store) SetMinSelectionWidth(w timeline.Millis) {
	if w < 0 {
		w = 0
	}
	s.minSelectionWidth = w
}

// SetZeroOffset applies a config reload.
func (s *Store) SetZeroOffset(z timeline.Millis) {
	s.zeroOffset = z
}
