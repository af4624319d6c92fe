package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wilbur182/zoomline/internal/app"
	"github.com/wilbur182/zoomline/internal/config"
	"github.com/wilbur182/zoomline/internal/history"
	"github.com/wilbur182/zoomline/internal/store"
	"github.com/wilbur182/zoomline/internal/styles"
	"github.com/wilbur182/zoomline/internal/timeline"
	"github.com/wilbur182/zoomline/internal/track"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	tracksPath   = flag.String("tracks", "", "path to a JSON tracks file (default: built-in demo data)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("zoomline version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	themeName := cfg.UI.Theme.Name
	if !styles.IsValidTheme(themeName) {
		logger.Warn("unknown theme, using default", "theme", themeName)
		themeName = "default"
	}
	styles.ApplyTheme(themeName, cfg.UI.Theme.Overrides)

	tracks, err := loadTracks(cfg, *tracksPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tracks: %v\n", err)
		os.Exit(1)
	}

	window, ok := track.Extent(tracks)
	if !ok {
		window = timeline.Range{Start: 0, End: 1000}
	}

	var hist store.History
	if cfg.History.Enabled {
		dbPath := cfg.History.DBPath
		if dbPath == "" {
			dbPath = filepath.Join(filepath.Dir(cfgPath), "history.db")
		}
		h, err := history.Open(dbPath)
		if err != nil {
			logger.Warn("zoom history disabled", "path", dbPath, "err", err)
		} else {
			defer h.Close()
			hist = h
		}
	}

	st := store.New(window, store.Options{
		ZeroOffset:        timeline.Millis(cfg.Timeline.ZeroOffset / time.Millisecond),
		MinSelectionWidth: timeline.Millis(cfg.Timeline.MinSelectionWidth / time.Millisecond),
		History:           hist,
		Logger:            logger,
	})

	// Live-reload the config when the file changes on disk. Best effort:
	// a missing file just means no watcher.
	var watcher *config.Watcher
	if _, err := os.Stat(cfgPath); err == nil {
		watcher, err = config.NewWatcher(cfgPath)
		if err != nil {
			logger.Warn("config watching disabled", "err", err)
		} else {
			defer watcher.Stop()
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "zoomline must run in a terminal")
		os.Exit(1)
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		logger.Debug("terminal size", "width", w, "height", h)
	}

	model := app.New(app.Options{
		Config:     cfg,
		ConfigPath: cfgPath,
		Tracks:     tracks,
		Store:      st,
		Watcher:    watcher,
		Logger:     logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// loadTracks resolves the span data source: flag first, then config, then
// the built-in demo.
func loadTracks(cfg *config.Config, flagPath string) ([]track.Track, error) {
	path := flagPath
	if path == "" {
		path = cfg.Tracks.File
	}
	if path == "" {
		return track.Demo(), nil
	}
	return track.LoadFile(path)
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: zoomline [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal timeline viewer with drag-to-zoom range selection.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
