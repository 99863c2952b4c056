package core

// InputState is the level state of the five buttons sampled once per frame.
// No debouncing or edge detection is applied: a held button reads true on
// every frame it is held.
type InputState struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Center bool
}

// Any returns true if any button is pressed.
func (s InputState) Any() bool {
	return s.Up || s.Down || s.Left || s.Right || s.Center
}

// Merge returns the union of two input states.
func (s InputState) Merge(other InputState) InputState {
	return InputState{
		Up:     s.Up || other.Up,
		Down:   s.Down || other.Down,
		Left:   s.Left || other.Left,
		Right:  s.Right || other.Right,
		Center: s.Center || other.Center,
	}
}

// String renders the pressed buttons as letters (e.g. "UR"), or "." when idle.
func (s InputState) String() string {
	var b []byte
	if s.Up {
		b = append(b, 'U')
	}
	if s.Down {
		b = append(b, 'D')
	}
	if s.Left {
		b = append(b, 'L')
	}
	if s.Right {
		b = append(b, 'R')
	}
	if s.Center {
		b = append(b, 'C')
	}
	if len(b) == 0 {
		return "."
	}
	return string(b)
}
