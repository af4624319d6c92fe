package track

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wilbur182/zoomline/internal/timeline"
)

func TestSpan_Overlaps(t *testing.T) {
	r := timeline.Range{Start: 100, End: 300}

	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"inside", Span{Start: 150, End: 250}, true},
		{"covers window", Span{Start: 0, End: 500}, true},
		{"left overlap", Span{Start: 50, End: 150}, true},
		{"right overlap", Span{Start: 250, End: 400}, true},
		{"entirely left", Span{Start: 0, End: 50}, false},
		{"entirely right", Span{Start: 400, End: 500}, false},
		{"touching left edge", Span{Start: 0, End: 100}, false},
		{"touching right edge", Span{Start: 300, End: 400}, false},
	}

	for _, tt := range tests {
		if got := tt.span.Overlaps(r); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSpan_Clip(t *testing.T) {
	r := timeline.Range{Start: 100, End: 300}

	clipped, ok := Span{Label: "x", Start: 50, End: 400}.Clip(r)
	if !ok {
		t.Fatal("overlapping span should clip")
	}
	if clipped.Start != 100 || clipped.End != 300 {
		t.Errorf("clipped = %d..%d, want 100..300", clipped.Start, clipped.End)
	}

	if _, ok := (Span{Start: 400, End: 500}).Clip(r); ok {
		t.Error("non-overlapping span should not clip")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	content := `{
		"tracks": [
			{"name": "a", "spans": [
				{"label": "late", "startMs": 500, "endMs": 600},
				{"label": "early", "startMs": 100, "endMs": 200}
			]}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tracks, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(tracks) != 1 || len(tracks[0].Spans) != 2 {
		t.Fatalf("got %+v", tracks)
	}
	if tracks[0].Spans[0].Label != "early" {
		t.Errorf("spans not sorted by start: first is %q", tracks[0].Spans[0].Label)
	}
}

func TestLoadFile_RejectsInvertedSpan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	content := `{"tracks": [{"name": "a", "spans": [{"label": "bad", "startMs": 500, "endMs": 100}]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile should reject a span with end before start")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}

func TestExtent(t *testing.T) {
	tracks := []Track{
		{Name: "a", Spans: []Span{{Start: 200, End: 400}}},
		{Name: "b", Spans: []Span{{Start: 50, End: 100}, {Start: 600, End: 900}}},
	}
	got, ok := Extent(tracks)
	if !ok {
		t.Fatal("Extent should find spans")
	}
	if got != (timeline.Range{Start: 50, End: 900}) {
		t.Errorf("Extent = %v, want 50..900", got)
	}

	if _, ok := Extent(nil); ok {
		t.Error("Extent of no tracks should report ok=false")
	}
}

func TestCopyText(t *testing.T) {
	tracks := []Track{
		{Name: "a", Spans: []Span{
			{Label: "in", Start: 150, End: 250},
			{Label: "out", Start: 400, End: 500},
		}},
	}
	got := CopyText(tracks, timeline.Range{Start: 100, End: 300})

	if !strings.Contains(got, "100ms..300ms (200ms)") {
		t.Errorf("missing window header in %q", got)
	}
	if !strings.Contains(got, "a: in 150ms..250ms") {
		t.Errorf("missing overlapping span in %q", got)
	}
	if strings.Contains(got, "out") {
		t.Errorf("non-overlapping span leaked into %q", got)
	}
}

func TestDemo_SpansAreOrdered(t *testing.T) {
	for _, tr := range Demo() {
		for i, sp := range tr.Spans {
			if sp.End < sp.Start {
				t.Errorf("track %s span %d inverted", tr.Name, i)
			}
			if i > 0 && sp.Start < tr.Spans[i-1].End {
				t.Errorf("track %s spans %d/%d overlap", tr.Name, i-1, i)
			}
		}
	}
}
