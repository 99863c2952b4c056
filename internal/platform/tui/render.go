package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixelsnake/internal/config"
	"github.com/vovakirdan/pixelsnake/internal/core"
)

// Cell glyphs are two columns wide to keep cells square.
const (
	litGlyph  = "██"
	darkGlyph = "··"
)

// PanelStyles maps pixel categories to lipgloss styles.
type PanelStyles struct {
	Off   lipgloss.Style
	Apple lipgloss.Style
	Snake lipgloss.Style
	Frame lipgloss.Style
}

// NewPanelStyles builds styles from the configured colors.
func NewPanelStyles(c config.ColorConfig) PanelStyles {
	return PanelStyles{
		Off:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Background)),
		Apple: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Apple)),
		Snake: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Snake)),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
	}
}

// blinkOn reports whether blinking pixels are lit on this frame.
func blinkOn(frame uint64, blinkFrames int) bool {
	return (frame/uint64(blinkFrames))%2 == 0
}

// RenderPanel draws a frame buffer as a bordered panel. Blinking pixels are
// lit or dark depending on the frame number.
func RenderPanel(buf core.Buffer, grid core.Grid, frame uint64, blinkFrames int, st PanelStyles) string {
	lit := blinkOn(frame, blinkFrames)

	var sb strings.Builder
	for y := 0; y < grid.Height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < grid.Width; x++ {
			switch buf[grid.IndexOf(x, y)] {
			case core.PixelOn:
				sb.WriteString(st.Snake.Render(litGlyph))
			case core.PixelBlink:
				if lit {
					sb.WriteString(st.Apple.Render(litGlyph))
				} else {
					sb.WriteString(st.Off.Render(darkGlyph))
				}
			default:
				sb.WriteString(st.Off.Render(darkGlyph))
			}
		}
	}
	return st.Frame.Render(sb.String())
}
