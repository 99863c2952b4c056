package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixelsnake/internal/core"
)

// button indexes the five panel buttons.
type button int

const (
	buttonUp button = iota
	buttonDown
	buttonLeft
	buttonRight
	buttonCenter
	buttonCount
)

// KeyMap defines the key bindings for the panel buttons.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Center key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Center, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Center, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Center: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "center"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// buttonFor returns the button a key press maps to.
func (k KeyMap) buttonFor(msg tea.KeyMsg) (button, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return buttonUp, true
	case key.Matches(msg, k.Down):
		return buttonDown, true
	case key.Matches(msg, k.Left):
		return buttonLeft, true
	case key.Matches(msg, k.Right):
		return buttonRight, true
	case key.Matches(msg, k.Center):
		return buttonCenter, true
	}
	return 0, false
}

// heldButtons emulates level-triggered buttons on a terminal, which only
// reports presses: a press reads as held for a fixed number of frames.
type heldButtons [buttonCount]int

// press marks b as held for frames frames.
func (h *heldButtons) press(b button, frames int) {
	h[b] = frames
}

// sample returns the current level state and advances one frame.
func (h *heldButtons) sample() core.InputState {
	in := core.InputState{
		Up:     h[buttonUp] > 0,
		Down:   h[buttonDown] > 0,
		Left:   h[buttonLeft] > 0,
		Right:  h[buttonRight] > 0,
		Center: h[buttonCenter] > 0,
	}
	for i := range h {
		if h[i] > 0 {
			h[i]--
		}
	}
	return in
}
