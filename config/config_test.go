package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Field.Width != 8 || c.Field.Height != 8 || c.Field.Depth != 8 {
		t.Fatalf("field: got %dx%dx%d, want 8x8x8", c.Field.Width, c.Field.Height, c.Field.Depth)
	}
	if c.Game.TickSeconds != 0.2 {
		t.Fatalf("tick: got %v, want 0.2", c.Game.TickSeconds)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake3d.yaml")
	doc := "window:\n  width: 1280\n  height: 720\nfield:\n  width: 12\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Window.Width != 1280 || c.Window.Height != 720 {
		t.Fatalf("window: got %dx%d, want 1280x720", c.Window.Width, c.Window.Height)
	}
	if c.Field.Width != 12 {
		t.Fatalf("field width: got %d, want 12", c.Field.Width)
	}
	// Untouched keys keep their defaults.
	if c.Field.Height != 8 || c.Game.TickSeconds != 0.2 {
		t.Fatalf("defaults lost: height %d, tick %v", c.Field.Height, c.Game.TickSeconds)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if c != Default() {
		t.Fatal("missing file did not yield the default config")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"tiny field", "field:\n  width: 1\n"},
		{"zero tick", "game:\n  tick_seconds: 0\n"},
		{"inverted radius range", "camera:\n  min_radius: 10\n  max_radius: 1\n"},
		{"malformed yaml", "window: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			c, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if c != Default() {
				t.Fatal("invalid file did not yield the default config")
			}
		})
	}
}
