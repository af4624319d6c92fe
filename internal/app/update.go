package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/zoomline/internal/config"
	"github.com/wilbur182/zoomline/internal/mouse"
	"github.com/wilbur182/zoomline/internal/styles"
	"github.com/wilbur182/zoomline/internal/timeline"
	"github.com/wilbur182/zoomline/internal/track"
	"github.com/wilbur182/zoomline/internal/ui"
)

// Messages emitted by key bindings and background work.
type (
	zoomBackMsg      struct{}
	copyRangeMsg     struct{}
	openGotoMsg      struct{}
	reloadConfigMsg  struct{}
	toggleHelpMsg    struct{}
	cancelMsg        struct{}
	tickMsg          struct{}
	configChangedMsg struct{}
)

// waitForConfigChange blocks on the watcher until the config file changes
// on disk.
func waitForConfigChange(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Events()
		return configChangedMsg{}
	}
}

// Update processes messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lay.rect = m.trackRect()
		m.ready = true
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case zoomBackMsg:
		if m.store.ZoomBack() {
			m.ShowToast("zoomed back out", false)
		} else {
			m.ShowToast("no zoom history", true)
		}
		return m, nil

	case copyRangeMsg:
		m.copySelection()
		return m, nil

	case openGotoMsg:
		m.gotoModal = newGotoModal(m.store.Committed())
		return m, nil

	case reloadConfigMsg:
		m.reloadConfig()
		return m, nil

	case configChangedMsg:
		m.reloadConfig()
		if m.watcher != nil {
			return m, waitForConfigChange(m.watcher)
		}
		return m, nil

	case toggleHelpMsg:
		m.showHelp = !m.showHelp
		return m, nil

	case cancelMsg:
		m.controller.Cancel()
		return m, nil

	case tickMsg:
		m.ClearToast()
		return m, tickCmd()
	}

	return m, nil
}

// handleKey routes key events: an open modal sees them first, everything
// else goes through the keymap.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gotoModal != nil {
		done, r, ok, cmd := m.gotoModal.Update(msg)
		if done {
			m.gotoModal = nil
			if ok {
				m.store.Commit(r.Start, r.End)
				m.ShowToast("window set to "+r.String(), false)
			}
		}
		return m, cmd
	}
	return m, m.keymap.Handle(msg)
}

// handleMouse routes pointer events. While a gesture owns the pointer all
// motion and release events go straight to the controller; otherwise
// presses are hit-tested against the overlay hotspots first.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.gotoModal != nil {
		return m, nil
	}

	ev := mouse.FromMsg(msg)
	if ev == nil {
		return m, nil
	}

	if m.controller.Capturing() {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.controller.PointerMove(ev)
		case tea.MouseActionRelease:
			m.controller.PointerUp(ev)
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if region := m.hits.Test(ev.X, ev.Y); region != nil {
			switch region.ID {
			case ui.RegionZoomButton:
				if ev.PrimaryPress() {
					ev.Consume()
					m.controller.Zoom()
					return m, nil
				}
			case ui.RegionHandleStart, ui.RegionHandleMove, ui.RegionHandleEnd:
				if kind, ok := region.Data.(timeline.HandleKind); ok {
					if m.controller.BeginHandleDrag(kind, ev) {
						return m, nil
					}
				}
			}
		}
		m.controller.PointerDown(ev)

	case tea.MouseActionMotion:
		m.controller.PointerMove(ev)
	}

	return m, nil
}

// copySelection puts the selected range's spans on the system clipboard.
func (m *Model) copySelection() {
	sel := m.store.Selection()
	if !sel.Present {
		m.ShowToast("nothing selected", true)
		return
	}
	text := track.CopyText(m.tracks, sel.Range())
	if err := clipboard.WriteAll(text); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		m.ShowToast("copy failed: "+err.Error(), true)
		return
	}
	m.ShowToast("copied "+sel.Range().String(), false)
}

// reloadConfig re-reads the config file and applies it in place.
func (m *Model) reloadConfig() {
	cfg, err := config.Load(m.cfgPath)
	if err != nil {
		m.log.Warn("config reload failed", "path", m.cfgPath, "error", err)
		m.ShowToast("config reload failed: "+err.Error(), true)
		return
	}
	m.applyConfig(cfg)
	m.ShowToast("config reloaded", false)
}

// applyTheme activates the configured theme if it exists.
func applyTheme(cfg *config.Config) {
	name := cfg.UI.Theme.Name
	if !styles.IsValidTheme(name) {
		name = "default"
	}
	styles.ApplyTheme(name, cfg.UI.Theme.Overrides)
}
