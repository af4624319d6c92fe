package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/wilbur182/zoomline/internal/styles"
)

// ansiResetRe matches ANSI reset sequences (both \x1b[0m and \x1b[m).
var ansiResetRe = regexp.MustCompile(`\x1b\[0?m`)

// bgANSI returns the 24-bit background code for a #RRGGBB color.
func bgANSI(hex string, fr, fg, fb int) string {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		r, g, b = fr, fg, fb
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// SelectionBgANSI returns the background code for the selected span,
// from the current theme.
func SelectionBgANSI() string {
	return bgANSI(styles.GetCurrentTheme().Colors.BgSelection, 55, 65, 81)
}

// DimBgANSI returns the background code for the dimmed regions outside the
// selection.
func DimBgANSI() string {
	return bgANSI(styles.GetCurrentTheme().Colors.BgDim, 11, 16, 27)
}

// GuideBgANSI returns the background code for the hover guide column.
func GuideBgANSI() string {
	return bgANSI(styles.GetCurrentTheme().Colors.HoverGuide, 75, 85, 99)
}

// InjectBackground adds a background color to a whole line while
// preserving existing ANSI styling: the code is prepended and re-injected
// after every reset sequence.
func InjectBackground(s, bg string) string {
	result := bg + s
	result = ansiResetRe.ReplaceAllString(result, "${0}"+bg)
	return result + "\x1b[0m"
}

// InjectRangeBackground applies a background color to visual columns
// [startCol, endCol] (inclusive) within the line. endCol of -1 paints to
// end of line. ANSI sequences already in the line are preserved; a reset
// inside the painted range re-injects the background.
func InjectRangeBackground(line string, startCol, endCol int, bg string) string {
	if startCol == 0 && endCol == -1 {
		return InjectBackground(line, bg)
	}

	var sb strings.Builder
	sb.Grow(len(line) + 64)

	state := ansi.NormalState
	cumWidth := 0
	painting := false

	remaining := line
	for len(remaining) > 0 {
		seq, width, n, newState := ansi.GraphemeWidth.DecodeSequenceInString(remaining, state, nil)
		if n <= 0 {
			sb.WriteString(remaining)
			break
		}

		if width > 0 {
			inRange := false
			if endCol == -1 {
				inRange = cumWidth >= startCol
			} else {
				inRange = cumWidth >= startCol && cumWidth <= endCol
			}

			if inRange && !painting {
				sb.WriteString(bg)
				painting = true
			} else if !inRange && painting {
				sb.WriteString("\x1b[49m") // reset background only, keep foreground
				painting = false
			}

			sb.WriteString(seq)
			cumWidth += width

			if endCol >= 0 && cumWidth > endCol && painting {
				sb.WriteString("\x1b[49m")
				painting = false
			}
		} else {
			sb.WriteString(seq)
			if painting && ansiResetRe.MatchString(seq) {
				sb.WriteString(bg)
			}
		}

		state = newState
		remaining = remaining[n:]
	}

	if painting {
		sb.WriteString("\x1b[49m")
	}

	return sb.String()
}

// PadToWidth extends a line with spaces to exactly w visual columns, so
// injected backgrounds reach the container edge. Longer lines are
// truncated.
func PadToWidth(line string, w int) string {
	width := ansi.StringWidth(line)
	if width == w {
		return line
	}
	if width > w {
		return ansi.Truncate(line, w, "")
	}
	return line + strings.Repeat(" ", w-width)
}

// PaintSelection paints one track row with the selection overlay: dim
// backgrounds outside [selStartX, selEndX) and the selection background
// inside. Columns are absolute; the row is assumed to start at column
// rectX and already be padded to rectW.
func PaintSelection(row string, rectX, rectW, selStartX, selEndX int) string {
	dim := DimBgANSI()
	sel := SelectionBgANSI()

	left := selStartX - rectX
	right := selEndX - rectX

	if left > 0 {
		row = InjectRangeBackground(row, 0, left-1, dim)
	}
	if right > left {
		row = InjectRangeBackground(row, left, right-1, sel)
	}
	if right < rectW {
		row = InjectRangeBackground(row, right, rectW-1, dim)
	}
	return row
}

// PaintHoverGuide highlights a single column as the hover guide line.
func PaintHoverGuide(row string, rectX, hoverX int) string {
	col := hoverX - rectX
	if col < 0 {
		return row
	}
	return InjectRangeBackground(row, col, col, GuideBgANSI())
}
