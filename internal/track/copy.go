package track

import (
	"fmt"
	"strings"

	"github.com/wilbur182/zoomline/internal/timeline"
)

// CopyText formats a selected window and the spans overlapping it as plain
// text for the clipboard.
func CopyText(tracks []Track, sel timeline.Range) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%dms)\n", sel.String(), int64(sel.Duration()))
	for _, tr := range tracks {
		for _, sp := range tr.Spans {
			if !sp.Overlaps(sel) {
				continue
			}
			fmt.Fprintf(&sb, "%s: %s %dms..%dms\n",
				tr.Name, sp.Label, int64(sp.Start), int64(sp.End))
		}
	}
	return sb.String()
}
