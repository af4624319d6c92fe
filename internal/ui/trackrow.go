package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/wilbur182/zoomline/internal/styles"
	"github.com/wilbur182/zoomline/internal/timeline"
	"github.com/wilbur182/zoomline/internal/track"
)

// RenderTrackRow lays a track's spans across w columns of the window r.
// Spans are clipped to the window; every visible span gets at least one
// column so short spans stay grabbable targets.
func RenderTrackRow(tr track.Track, r timeline.Range, w int, styleIdx int) string {
	var sb strings.Builder
	pos := 0
	for _, sp := range tr.Spans {
		clipped, ok := sp.Clip(r)
		if !ok {
			continue
		}
		startX := timeline.SpanWidth(clipped.Start-r.Start, w, r)
		endX := timeline.SpanWidth(clipped.End-r.Start, w, r)
		if endX <= startX {
			endX = startX + 1
		}
		if startX < pos {
			startX = pos
		}
		if startX >= w {
			break
		}
		if endX > w {
			endX = w
		}
		if endX <= startX {
			continue
		}
		sb.WriteString(strings.Repeat(" ", startX-pos))
		sb.WriteString(styles.SpanStyle(styleIdx).Render(spanBlock(sp.Label, endX-startX)))
		pos = endX
	}
	if pos < w {
		sb.WriteString(strings.Repeat(" ", w-pos))
	}
	return sb.String()
}

// spanBlock fits a label into a fixed-width block.
func spanBlock(label string, w int) string {
	s := runewidth.Truncate(label, w, "")
	return s + strings.Repeat(" ", w-runewidth.StringWidth(s))
}
