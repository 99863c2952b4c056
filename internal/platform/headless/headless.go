// Package headless drives a session from a scripted input sequence and
// renders each frame as text. It stands in for the buttons and the LED
// panel when no terminal UI is wanted.
package headless

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelsnake/internal/core"
	"github.com/vovakirdan/pixelsnake/internal/rng"
	"github.com/vovakirdan/pixelsnake/internal/session"
)

// ErrBadScript is returned for unparseable input scripts.
var ErrBadScript = errors.New("headless: bad script")

// Glyphs used for text rendering of each pixel category.
var Glyphs = map[core.Pixel]rune{
	core.PixelOff:   '.',
	core.PixelBlink: '*',
	core.PixelOn:    '#',
}

// Frame is the record of one host loop iteration.
type Frame struct {
	Number  uint64
	Input   core.InputState
	Outcome core.Outcome
	Pixels  core.Buffer
}

// ParseScript parses a whitespace or comma separated list of steps.
// Each step is a combination of U, D, L, R, C (case-insensitive), or "." for
// no input. A step may carry a repeat count suffix, e.g. "R*3".
func ParseScript(script string) ([]core.InputState, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var steps []core.InputState
	for _, f := range fields {
		token, repeat, err := splitRepeat(f)
		if err != nil {
			return nil, err
		}
		in, err := parseStep(token)
		if err != nil {
			return nil, err
		}
		for i := 0; i < repeat; i++ {
			steps = append(steps, in)
		}
	}
	return steps, nil
}

func splitRepeat(field string) (string, int, error) {
	token, count, found := strings.Cut(field, "*")
	if !found {
		return field, 1, nil
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("%w: repeat count in %q", ErrBadScript, field)
	}
	return token, n, nil
}

func parseStep(token string) (core.InputState, error) {
	var in core.InputState
	if token == "." {
		return in, nil
	}
	if token == "" {
		return in, fmt.Errorf("%w: empty step", ErrBadScript)
	}
	for _, r := range strings.ToUpper(token) {
		switch r {
		case 'U':
			in.Up = true
		case 'D':
			in.Down = true
		case 'L':
			in.Left = true
		case 'R':
			in.Right = true
		case 'C':
			in.Center = true
		default:
			return in, fmt.Errorf("%w: unknown button %q in %q", ErrBadScript, r, token)
		}
	}
	return in, nil
}

// Runner owns the session, frame counter, and random source of a headless
// host loop.
type Runner struct {
	session *session.Session
	ctx     core.Context
}

// NewRunner creates a runner for gameID with a random source seeded once
// with seed.
func NewRunner(gameID string, cfg core.RuntimeConfig, seed uint64, logger *log.Logger) (*Runner, error) {
	r := &Runner{ctx: core.Context{RNG: rng.New(seed)}}
	s, err := session.New(gameID, cfg, &r.ctx, logger)
	if err != nil {
		return nil, err
	}
	r.session = s
	return r, nil
}

// Session returns the driven session.
func (r *Runner) Session() *session.Session {
	return r.session
}

// Step runs one update and one display call.
func (r *Runner) Step(in core.InputState) (Frame, error) {
	out, err := r.session.Update(in, &r.ctx)
	f := Frame{
		Number:  r.ctx.Frame,
		Input:   in,
		Outcome: out,
		Pixels:  r.session.Display(),
	}
	r.ctx.Frame++
	return f, err
}

// Run steps through every input in order and returns the frames.
func (r *Runner) Run(steps []core.InputState) ([]Frame, error) {
	frames := make([]Frame, 0, len(steps))
	for _, in := range steps {
		f, err := r.Step(in)
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Render draws one frame as text: a header line followed by the grid.
func Render(f Frame, grid core.Grid) string {
	header := fmt.Sprintf("frame %d  input %s  %s", f.Number, f.Input, f.Outcome)
	width := max(grid.Width, len(header))
	s := core.NewScreen(width, grid.Height+1)
	s.DrawText(0, 0, header)
	s.DrawPixels(0, 1, grid, f.Pixels, Glyphs)

	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.Join(rows, "\n")
}
