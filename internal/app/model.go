package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/zoomline/internal/config"
	"github.com/wilbur182/zoomline/internal/keymap"
	"github.com/wilbur182/zoomline/internal/mouse"
	"github.com/wilbur182/zoomline/internal/store"
	"github.com/wilbur182/zoomline/internal/timeline"
	"github.com/wilbur182/zoomline/internal/track"
)

// Column width reserved for track names on the left of the timeline.
const nameColumnWidth = 12

// Vertical layout rows above the track area: title row, then the control
// row where the zoom button and duration label render.
const (
	titleRow   = 0
	controlRow = 1
	trackTop   = 2
)

// layout is shared by pointer with the gesture controller so its bounds
// callback always sees the current geometry, not a stale model copy.
type layout struct {
	rect mouse.Rect
}

// Model is the root Bubble Tea model for the zoomline application.
type Model struct {
	cfg     *config.Config
	cfgPath string

	tracks []track.Track

	store      *store.Store
	controller *timeline.Controller
	keymap     *keymap.Registry
	watcher    *config.Watcher

	lay  *layout
	hits *mouse.HitMap

	log *slog.Logger

	// UI state
	width, height int
	showFooter    bool
	showHelp      bool
	ready         bool

	// Go-to-range modal
	gotoModal *gotoModal

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool
}

// Options carries everything the application model needs at startup.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Tracks     []track.Track
	Store      *store.Store
	Watcher    *config.Watcher // may be nil
	Logger     *slog.Logger
}

// New creates the application model and wires the gesture controller to
// the track area geometry.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	lay := &layout{}
	m := Model{
		cfg:        opts.Config,
		cfgPath:    opts.ConfigPath,
		tracks:     opts.Tracks,
		store:      opts.Store,
		controller: timeline.NewController(opts.Store, func() mouse.Rect { return lay.rect }, opts.Logger),
		keymap:     keymap.NewRegistry(),
		watcher:    opts.Watcher,
		lay:        lay,
		hits:       mouse.NewHitMap(),
		log:        opts.Logger,
		showFooter: opts.Config.UI.ShowFooter,
	}
	m.registerCommands()
	return m
}

// Init initializes the model and returns initial commands.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return tea.Batch(tickCmd(), waitForConfigChange(m.watcher))
	}
	return tickCmd()
}

// tickCmd drives toast expiry.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{} })
}

// registerCommands wires the default key bindings. Handlers emit messages
// rather than mutating the model so dispatch stays inside Update.
func (m *Model) registerCommands() {
	emit := func(msg tea.Msg) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return msg }
		}
	}

	commands := []struct {
		id, name, key string
		handler       func() tea.Cmd
	}{
		{"zoom.back", "Zoom back out", "u", emit(zoomBackMsg{})},
		{"selection.copy", "Copy selected range", "y", emit(copyRangeMsg{})},
		{"window.goto", "Go to range", "g", emit(openGotoMsg{})},
		{"config.reload", "Reload config", "r", emit(reloadConfigMsg{})},
		{"help.toggle", "Toggle help", "?", emit(toggleHelpMsg{})},
		{"gesture.cancel", "Cancel gesture", "esc", emit(cancelMsg{})},
		{"app.quit", "Quit", "q", func() tea.Cmd { return tea.Quit }},
	}
	for _, c := range commands {
		m.keymap.RegisterCommand(keymap.Command{ID: c.id, Name: c.name, Handler: c.handler})
		m.keymap.Bind(c.key, c.id)
	}
	m.keymap.Bind("ctrl+c", "app.quit")
}

// trackRect returns the track area content rectangle for the current
// window size.
func (m Model) trackRect() mouse.Rect {
	w := m.width - nameColumnWidth
	if w < 0 {
		w = 0
	}
	return mouse.Rect{X: nameColumnWidth, Y: trackTop, W: w, H: len(m.tracks)}
}

// ShowToast displays a temporary status message. The periodic tick clears
// it once expired.
func (m *Model) ShowToast(msg string, isError bool) {
	m.statusMsg = msg
	m.statusIsError = isError
	m.statusExpiry = time.Now().Add(3 * time.Second)
}

// ClearToast clears an expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// applyConfig pushes a loaded configuration into the running pieces.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.showFooter = cfg.UI.ShowFooter
	m.store.SetMinSelectionWidth(timeline.Millis(cfg.Timeline.MinSelectionWidth / time.Millisecond))
	m.store.SetZeroOffset(timeline.Millis(cfg.Timeline.ZeroOffset / time.Millisecond))
	applyTheme(cfg)
}

// windowTitle summarizes the committed window for the title row.
func (m Model) windowTitle() string {
	r := m.store.Committed()
	return fmt.Sprintf("%s  (%dms)", r.String(), int64(r.Duration()))
}
