package app

import (
	"strings"

	"github.com/wilbur182/zoomline/internal/styles"
	"github.com/wilbur182/zoomline/internal/ui"
)

const footerHints = "u zoom out · g goto · y copy · r reload · ? help · q quit"

// View renders the whole application. The overlay hotspots are rebuilt
// here so hit testing always matches what is on screen.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	rect := m.trackRect()
	committed := m.store.Committed()
	hoverX, hasHover := m.controller.Hover()

	ov := ui.BuildOverlay(ui.OverlayInput{
		Rect:      rect,
		Committed: committed,
		Selection: m.store.Selection(),
		HoverX:    hoverX,
		HasHover:  hasHover,
	})

	m.hits.Clear()
	ov.Hotspots(m.hits, controlRow)

	var b strings.Builder

	title := styles.Title.Render("zoomline") + "  " + styles.Muted.Render(m.windowTitle())
	b.WriteString(ui.PadToWidth(title, m.width))
	b.WriteByte('\n')

	b.WriteString(m.renderControlRow(ov))
	b.WriteByte('\n')

	for i, tr := range m.tracks {
		name := styles.TrackName.Render(ui.PadToWidth(tr.Name, nameColumnWidth))
		row := ui.PadToWidth(ui.RenderTrackRow(tr, committed, rect.W, i), rect.W)
		if ov.HasSelection {
			row = ui.PaintSelection(row, rect.X, rect.W, ov.SelStartX, ov.SelEndX)
		} else if ov.HasHover {
			row = ui.PaintHoverGuide(row, rect.X, ov.HoverX)
		}
		b.WriteString(name)
		b.WriteString(row)
		b.WriteByte('\n')
	}

	indent := strings.Repeat(" ", rect.X)
	ticks, labels := ui.BuildAxis(committed, rect.W)
	b.WriteString(indent + styles.AxisTick.Render(ticks))
	b.WriteByte('\n')
	b.WriteString(indent + styles.AxisLabel.Render(labels))
	b.WriteByte('\n')

	if m.gotoModal != nil {
		b.WriteByte('\n')
		b.WriteString(m.gotoModal.View())
		b.WriteByte('\n')
	}

	if m.showHelp {
		b.WriteByte('\n')
		b.WriteString(ui.RenderHelp(m.width))
		b.WriteByte('\n')
	}

	if m.showFooter {
		b.WriteByte('\n')
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderControlRow places the zoom button or the live duration label at
// the overlay's control column.
func (m Model) renderControlRow(ov ui.Overlay) string {
	if !ov.HasSelection {
		return ""
	}
	pad := strings.Repeat(" ", ov.ControlX)
	if ov.ShowLabel {
		return pad + styles.RangeLabel.Render(ov.Label)
	}
	if ov.ShowZoomButton {
		return pad + styles.Button.Render(ui.ZoomButtonLabel)
	}
	return ""
}

// renderFooter shows the active toast when present, key hints otherwise.
func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		if m.statusIsError {
			return styles.ToastError.Render(m.statusMsg)
		}
		return styles.Toast.Render(m.statusMsg)
	}
	return ui.PadToWidth(styles.Footer.Render(footerHints), m.width)
}
