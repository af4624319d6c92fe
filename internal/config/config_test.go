package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Timeline.MinSelectionWidth != 50*time.Millisecond {
		t.Errorf("MinSelectionWidth = %v, want 50ms", cfg.Timeline.MinSelectionWidth)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if !cfg.UI.ShowFooter {
		t.Error("footer should be shown by default")
	}
}

func TestValidate_RepairsNegativeThreshold(t *testing.T) {
	cfg := Default()
	cfg.Timeline.MinSelectionWidth = -time.Second

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Timeline.MinSelectionWidth != 50*time.Millisecond {
		t.Errorf("negative threshold not repaired: %v", cfg.Timeline.MinSelectionWidth)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeline.MinSelectionWidth != 50*time.Millisecond {
		t.Errorf("missing file should yield defaults, got %v", cfg.Timeline.MinSelectionWidth)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Timeline.MinSelectionWidth = 120 * time.Millisecond
	cfg.Timeline.ZeroOffset = 2 * time.Second
	cfg.History.Enabled = false
	cfg.History.DBPath = "/tmp/zoom.db"
	cfg.Tracks.File = "spans.json"
	cfg.UI.ShowFooter = false
	cfg.UI.Theme.Name = "mono"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Timeline.MinSelectionWidth != 120*time.Millisecond {
		t.Errorf("MinSelectionWidth = %v, want 120ms", got.Timeline.MinSelectionWidth)
	}
	if got.Timeline.ZeroOffset != 2*time.Second {
		t.Errorf("ZeroOffset = %v, want 2s", got.Timeline.ZeroOffset)
	}
	if got.History.Enabled {
		t.Error("History.Enabled should round-trip false")
	}
	if got.History.DBPath != "/tmp/zoom.db" {
		t.Errorf("DBPath = %q", got.History.DBPath)
	}
	if got.Tracks.File != "spans.json" {
		t.Errorf("Tracks.File = %q", got.Tracks.File)
	}
	if got.UI.ShowFooter {
		t.Error("ShowFooter should round-trip false")
	}
	if got.UI.Theme.Name != "mono" {
		t.Errorf("Theme.Name = %q", got.UI.Theme.Name)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"timeline": {"minSelectionWidth": "75ms"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeline.MinSelectionWidth != 75*time.Millisecond {
		t.Errorf("MinSelectionWidth = %v, want 75ms", cfg.Timeline.MinSelectionWidth)
	}
	// Fields absent from the file keep their defaults.
	if !cfg.UI.ShowFooter {
		t.Error("ShowFooter default lost on partial load")
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled default lost on partial load")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"timeline": {"minSelectionWidth": "not-a-duration"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject an unparseable duration")
	}
}

func TestWatcher_SignalsOnContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"ui":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte(`{"ui":{"showFooter":false}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("no reload signal after content change")
	}
}

func TestWatcher_IgnoresIdenticalRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := []byte(`{"ui":{}}`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	// Rewrite the same bytes: the content hash is unchanged.
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
		t.Fatal("identical rewrite should not signal a reload")
	case <-time.After(500 * time.Millisecond):
	}
}
