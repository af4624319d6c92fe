// Package track holds the span data rendered on the timeline.
package track

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/wilbur182/zoomline/internal/timeline"
)

// Span is one labeled interval on a track.
type Span struct {
	Label string          `json:"label"`
	Start timeline.Millis `json:"startMs"`
	End   timeline.Millis `json:"endMs"`
}

// Duration returns the span length.
func (s Span) Duration() timeline.Millis {
	return s.End - s.Start
}

// Overlaps reports whether the span intersects the window r.
func (s Span) Overlaps(r timeline.Range) bool {
	return s.Start < r.End && s.End > r.Start
}

// Clip constrains the span to the window r. The second return value is
// false when the span lies entirely outside.
func (s Span) Clip(r timeline.Range) (Span, bool) {
	if !s.Overlaps(r) {
		return Span{}, false
	}
	out := s
	if out.Start < r.Start {
		out.Start = r.Start
	}
	if out.End > r.End {
		out.End = r.End
	}
	return out, true
}

// Track is a named row of spans.
type Track struct {
	Name  string `json:"name"`
	Spans []Span `json:"spans"`
}

type file struct {
	Tracks []Track `json:"tracks"`
}

// LoadFile reads tracks from a JSON file. Spans with inverted bounds are
// rejected; spans within a track are sorted by start time.
func LoadFile(path string) ([]Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tracks file: %w", err)
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tracks file: %w", err)
	}
	for _, tr := range f.Tracks {
		for _, sp := range tr.Spans {
			if sp.End < sp.Start {
				return nil, fmt.Errorf("track %q: span %q has end before start", tr.Name, sp.Label)
			}
		}
		sort.Slice(tr.Spans, func(i, j int) bool {
			return tr.Spans[i].Start < tr.Spans[j].Start
		})
	}
	return f.Tracks, nil
}

// Extent returns the smallest window covering every span, or ok=false when
// there are no spans at all.
func Extent(tracks []Track) (timeline.Range, bool) {
	var r timeline.Range
	found := false
	for _, tr := range tracks {
		for _, sp := range tr.Spans {
			if !found {
				r = timeline.Range{Start: sp.Start, End: sp.End}
				found = true
				continue
			}
			if sp.Start < r.Start {
				r.Start = sp.Start
			}
			if sp.End > r.End {
				r.End = sp.End
			}
		}
	}
	return r, found
}

// Demo returns built-in sample data so the viewer is usable without a
// tracks file.
func Demo() []Track {
	return []Track{
		{
			Name: "ingest",
			Spans: []Span{
				{Label: "read batch", Start: 0, End: 1400},
				{Label: "read batch", Start: 1600, End: 2900},
				{Label: "read batch", Start: 3100, End: 4500},
				{Label: "flush", Start: 4700, End: 5200},
				{Label: "read batch", Start: 5400, End: 7200},
				{Label: "flush", Start: 7400, End: 7900},
			},
		},
		{
			Name: "parse",
			Spans: []Span{
				{Label: "decode", Start: 200, End: 900},
				{Label: "validate", Start: 950, End: 1700},
				{Label: "decode", Start: 1800, End: 3300},
				{Label: "validate", Start: 3400, End: 3900},
				{Label: "decode", Start: 5600, End: 6800},
			},
		},
		{
			Name: "index",
			Spans: []Span{
				{Label: "build", Start: 1000, End: 2400},
				{Label: "merge", Start: 2600, End: 4100},
				{Label: "build", Start: 4300, End: 6000},
				{Label: "compact", Start: 6200, End: 9500},
			},
		},
		{
			Name: "query",
			Spans: []Span{
				{Label: "plan", Start: 3000, End: 3200},
				{Label: "scan", Start: 3250, End: 5800},
				{Label: "aggregate", Start: 5900, End: 6400},
				{Label: "plan", Start: 7000, End: 7150},
				{Label: "scan", Start: 7200, End: 9800},
			},
		},
	}
}
