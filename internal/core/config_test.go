package core

import "testing"

func TestOutcome(t *testing.T) {
	tests := []struct {
		out      Outcome
		terminal bool
		str      string
	}{
		{Continue(), false, "continue"},
		{Win(64), true, "win(64)"},
		{Loss(3), true, "loss(3)"},
	}

	for _, tc := range tests {
		if tc.out.Terminal() != tc.terminal {
			t.Errorf("%v.Terminal() = %v, expected %v", tc.out, tc.out.Terminal(), tc.terminal)
		}
		if tc.out.String() != tc.str {
			t.Errorf("String() = %q, expected %q", tc.out.String(), tc.str)
		}
	}
}

func TestInputState(t *testing.T) {
	if (InputState{}).Any() {
		t.Error("idle input should not report Any()")
	}

	in := InputState{Up: true}.Merge(InputState{Center: true})
	if !in.Up || !in.Center || in.Down {
		t.Errorf("Merge() = %+v", in)
	}
	if in.String() != "UC" {
		t.Errorf("String() = %q, expected %q", in.String(), "UC")
	}
	if (InputState{}).String() != "." {
		t.Errorf("idle String() = %q, expected %q", InputState{}.String(), ".")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Grid.Size() != 64 {
		t.Errorf("Grid.Size() = %d, expected 64", cfg.Grid.Size())
	}
	if cfg.Start != (Point{X: 4, Y: 4}) {
		t.Errorf("Start = %+v, expected (4, 4)", cfg.Start)
	}
}

func TestBufferCount(t *testing.T) {
	buf := Buffer{PixelOff, PixelOn, PixelOn, PixelBlink}
	if buf.Count(PixelOn) != 2 || buf.Count(PixelBlink) != 1 || buf.Count(PixelOff) != 1 {
		t.Errorf("Count() mismatch for %v", buf)
	}
	if PixelBlink.String() != "blink" {
		t.Errorf("PixelBlink.String() = %q", PixelBlink.String())
	}
}
