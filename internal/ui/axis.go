package ui

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/wilbur182/zoomline/internal/timeline"
)

// FormatMillis renders a time value compactly ("100ms", "1.5s", "1m30s").
func FormatMillis(t timeline.Millis) string {
	return (time.Duration(t) * time.Millisecond).String()
}

// niceStep returns the smallest of 1, 2, 5 times a power of ten that is at
// least min.
func niceStep(min timeline.Millis) timeline.Millis {
	if min <= 1 {
		return 1
	}
	step := timeline.Millis(1)
	for {
		for _, m := range []timeline.Millis{1, 2, 5} {
			if step*m >= min {
				return step * m
			}
		}
		step *= 10
	}
}

// BuildAxis renders the tick row and label row for a window across w
// columns. Ticks land on round time values; labels are skipped when they
// would collide with the previous one.
func BuildAxis(r timeline.Range, w int) (ticks, labels string) {
	if w <= 0 || r.Duration() <= 0 {
		return "", ""
	}

	// Aim for a tick roughly every 12 cells.
	step := niceStep(r.Duration() * 12 / timeline.Millis(w))

	tickRow := []rune(strings.Repeat("─", w))
	labelRow := make([]rune, w)
	for i := range labelRow {
		labelRow[i] = ' '
	}

	nextLabelCol := 0
	first := (r.Start + step - 1) / step * step
	for t := first; t <= r.End; t += step {
		col := timeline.SpanWidth(t-r.Start, w, r)
		if col < 0 || col >= w {
			continue
		}
		tickRow[col] = '┼'

		label := FormatMillis(t)
		lw := runewidth.StringWidth(label)
		if col < nextLabelCol || col+lw > w {
			continue
		}
		copy(labelRow[col:], []rune(label))
		nextLabelCol = col + lw + 1
	}

	return string(tickRow), strings.TrimRight(string(labelRow), " ")
}
