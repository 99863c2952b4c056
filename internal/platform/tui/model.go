package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelsnake/internal/config"
	"github.com/vovakirdan/pixelsnake/internal/core"
	"github.com/vovakirdan/pixelsnake/internal/rng"
	"github.com/vovakirdan/pixelsnake/internal/session"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Options configures a panel run.
type Options struct {
	GameID string
	Config config.Config
	Seed   uint64 // 0 derives a seed from the clock
	Logger *log.Logger
}

// Model is the Bubble Tea model acting as the panel's host loop.
type Model struct {
	session  *session.Session
	ctx      *core.Context
	cfg      config.Config
	keys     KeyMap
	help     help.Model
	styles   PanelStyles
	held     heldButtons
	logger   *log.Logger
	last     core.Outcome
	err      error
	quitting bool
}

// NewModel seeds the random source once and constructs the first game.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	seed := rng.Seed(opts.Seed)
	ctx := &core.Context{RNG: rng.New(seed)}
	s, err := session.New(opts.GameID, opts.Config.Runtime(seed), ctx, logger)
	if err != nil {
		return Model{}, err
	}
	logger.Info("panel ready", "game", opts.GameID, "seed", seed,
		"grid", fmt.Sprintf("%dx%d", opts.Config.Grid.Width, opts.Config.Grid.Height))

	return Model{
		session: s,
		ctx:     ctx,
		cfg:     opts.Config,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  NewPanelStyles(opts.Config.Display.Colors),
		logger:  logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Display.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records button presses; they are sampled on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if b, ok := m.keys.buttonFor(msg); ok {
		m.held.press(b, m.cfg.Display.HoldFrames)
	}
	return m, nil
}

// handleTick runs one frame: sample buttons, update, advance the counter.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.held.sample()

	out, err := m.session.Update(in, m.ctx)
	if err != nil {
		m.logger.Error("cannot restart game", "error", err)
		m.err = err
		return m, tea.Quit
	}
	if out.Terminal() {
		m.last = out
	}
	m.ctx.Frame++

	return m, tickCmd(m.cfg.Display.FPS)
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the panel, the status line, and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	panel := RenderPanel(m.session.Display(), m.session.Grid(), m.ctx.Frame,
		m.cfg.Display.BlinkFrames, m.styles)

	return strings.Join([]string{
		panel,
		statusStyle.Render(m.status()),
		m.help.View(m.keys),
	}, "\n")
}

func (m Model) status() string {
	st := m.session.Stats()
	last := "-"
	if m.last.Terminal() {
		last = m.last.String()
	}
	return fmt.Sprintf("game %d  wins %d  losses %d  best %d  last %s",
		st.Sessions, st.Wins, st.Losses, st.BestScore, last)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
