package ui

import (
	"strings"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/wilbur182/zoomline/internal/styles"
)

const helpText = `Drag across the timeline to select a time range; short drags count as clicks. Drag the selection edges to resize it, or its middle to move it. Click [ zoom ] to commit the selection as the new window; click anywhere outside the selection to clear it.

Keys: u zoom back out · g go to range · y copy range · r reload config · ? toggle help · q quit`

// RenderHelp renders the wrapped help panel for the given total width.
func RenderHelp(width int) string {
	inner := width - 4 // border + padding
	if inner < 20 {
		inner = 20
	}
	var parts []string
	for _, para := range strings.Split(helpText, "\n\n") {
		parts = append(parts, cellbuf.Wrap(para, inner, ""))
	}
	return styles.HelpPanel.Render(strings.Join(parts, "\n\n"))
}
