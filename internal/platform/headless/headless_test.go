package headless

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/pixelsnake/internal/core"
	_ "github.com/vovakirdan/pixelsnake/internal/games/snake"
)

func TestParseScript(t *testing.T) {
	steps, err := ParseScript("R r*2, . UL\nc")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	expected := []core.InputState{
		{Right: true},
		{Right: true},
		{Right: true},
		{},
		{Up: true, Left: true},
		{Center: true},
	}
	if len(steps) != len(expected) {
		t.Fatalf("ParseScript() returned %d steps, expected %d", len(steps), len(expected))
	}
	for i := range expected {
		if steps[i] != expected[i] {
			t.Errorf("step %d = %v, expected %v", i, steps[i], expected[i])
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{"X", "R*0", "R*x", "*3"} {
		if _, err := ParseScript(script); !errors.Is(err, ErrBadScript) {
			t.Errorf("ParseScript(%q) error = %v, expected ErrBadScript", script, err)
		}
	}
}

func TestRunnerThreeFramesRight(t *testing.T) {
	r, err := NewRunner("snake", core.DefaultConfig(), 1, nil)
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}

	steps, err := ParseScript(". R*3")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	frames, err := r.Run(steps)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(frames) != 4 {
		t.Fatalf("Run() returned %d frames, expected 4", len(frames))
	}
	for i, f := range frames {
		if f.Number != uint64(i) {
			t.Errorf("frame %d numbered %d", i, f.Number)
		}
		if len(f.Pixels) != 64 {
			t.Errorf("frame %d has %d pixels, expected 64", i, len(f.Pixels))
		}
	}

	// The first frame has no input, so the head stays at (4, 4).
	grid := core.NewGrid(8, 8)
	if frames[0].Pixels[grid.IndexOf(4, 4)] != core.PixelOn {
		t.Error("head should start at (4, 4)")
	}
}

func TestRender(t *testing.T) {
	grid := core.NewGrid(3, 2)
	f := Frame{
		Number:  5,
		Input:   core.InputState{Right: true},
		Outcome: core.Continue(),
		Pixels:  core.Buffer{core.PixelOff, core.PixelOn, core.PixelBlink, core.PixelOff, core.PixelOff, core.PixelOff},
	}

	lines := strings.Split(Render(f, grid), "\n")
	if len(lines) != 3 {
		t.Fatalf("Render() produced %d lines, expected 3", len(lines))
	}
	if lines[0] != "frame 5  input R  continue" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != ".#*" || lines[2] != "..." {
		t.Errorf("grid rows = %q, %q", lines[1], lines[2])
	}
}
