package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/zoomline/internal/styles"
	"github.com/wilbur182/zoomline/internal/timeline"
)

// gotoModal is the "go to range" input: a window expressed as
// "start..end" in milliseconds, for example "100..300".
type gotoModal struct {
	input  textinput.Model
	errMsg string
}

func newGotoModal(current timeline.Range) *gotoModal {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d..%d", int64(current.Start), int64(current.End))
	ti.Prompt = "go to range: "
	ti.CharLimit = 40
	ti.Width = 30
	ti.Focus()
	return &gotoModal{input: ti}
}

// Update feeds one key event into the modal. done reports that the modal
// should close; ok carries a parsed range on submit.
func (g *gotoModal) Update(msg tea.KeyMsg) (done bool, r timeline.Range, ok bool, cmd tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return true, timeline.Range{}, false, nil
	case tea.KeyEnter:
		parsed, err := parseRange(g.input.Value())
		if err != nil {
			g.errMsg = err.Error()
			return false, timeline.Range{}, false, nil
		}
		return true, parsed, true, nil
	}
	g.input, cmd = g.input.Update(msg)
	g.errMsg = ""
	return false, timeline.Range{}, false, cmd
}

// View renders the modal line, with any parse error appended.
func (g *gotoModal) View() string {
	s := g.input.View()
	if g.errMsg != "" {
		s += "  " + styles.ToastError.Render(g.errMsg)
	}
	return s
}

// parseRange parses "start..end" in milliseconds. An "ms" suffix on
// either side is accepted.
func parseRange(s string) (timeline.Range, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "..", 2)
	if len(parts) != 2 {
		return timeline.Range{}, fmt.Errorf("expected start..end, e.g. 100..300")
	}
	start, err := parseMillis(parts[0])
	if err != nil {
		return timeline.Range{}, err
	}
	end, err := parseMillis(parts[1])
	if err != nil {
		return timeline.Range{}, err
	}
	if end <= start {
		return timeline.Range{}, fmt.Errorf("end must be after start")
	}
	return timeline.Range{Start: start, End: end}, nil
}

func parseMillis(s string) (timeline.Millis, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "ms")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad time value %q", strings.TrimSpace(s))
	}
	return timeline.Millis(n), nil
}
