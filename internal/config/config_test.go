package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pixelsnake/internal/core"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
grid:
  width: 16
  height: 4
snake:
  start_x: 2
  start_y: 1
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Grid.Width != 16 || cfg.Grid.Height != 4 {
		t.Errorf("grid = %dx%d, expected 16x4", cfg.Grid.Width, cfg.Grid.Height)
	}
	// Unset fields keep defaults
	if cfg.Display.FPS != Default().Display.FPS {
		t.Errorf("fps = %d, expected default %d", cfg.Display.FPS, Default().Display.FPS)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := writeConfig(t, dir, "grid: [not, a, map")
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := writeConfig(t, dir, "snake:\n  start_x: 9\n")
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pixelsnake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	path := writeConfig(t, dir, "display:\n  fps: 20\n")

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Display.FPS != 20 {
		t.Errorf("fps = %d, expected 20", cfg.Display.FPS)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, expected default", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"two cells", func(c *Config) { c.Grid = GridConfig{Width: 2, Height: 1}; c.Snake = SnakeConfig{} }, true},
		{"single cell", func(c *Config) { c.Grid = GridConfig{Width: 1, Height: 1}; c.Snake = SnakeConfig{} }, false},
		{"zero width", func(c *Config) { c.Grid.Width = 0 }, false},
		{"start off grid", func(c *Config) { c.Snake.StartY = 8 }, false},
		{"negative start", func(c *Config) { c.Snake.StartX = -1 }, false},
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }, false},
		{"zero blink", func(c *Config) { c.Display.BlinkFrames = 0 }, false},
		{"zero hold", func(c *Config) { c.Display.HoldFrames = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	rc := Default().Runtime(77)

	if rc.Grid != core.NewGrid(8, 8) {
		t.Errorf("Grid = %+v, expected 8x8", rc.Grid)
	}
	if rc.Start != (core.Point{X: 4, Y: 4}) {
		t.Errorf("Start = %+v, expected (4, 4)", rc.Start)
	}
	if rc.Seed != 77 || rc.TickRate != 6 {
		t.Errorf("Seed/TickRate = %d/%d, expected 77/6", rc.Seed, rc.TickRate)
	}
}
