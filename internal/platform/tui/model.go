package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmukelyan/flappy-term/internal/config"
	"github.com/hmukelyan/flappy-term/internal/core"
	"github.com/hmukelyan/flappy-term/internal/game"
)

// Model is the Bubble Tea model driving the game.
type Model struct {
	game   *game.Game
	world  config.Config
	cfg    core.RuntimeConfig
	screen *core.Screen
	keys   KeyMap
	splash progress.Model

	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(g *game.Game, world config.Config, cfg core.RuntimeConfig) Model {
	// Use a time-based seed if not specified.
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Reset(cfg)

	return Model{
		game:   g,
		world:  world,
		cfg:    cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   DefaultKeyMap(),
		splash: progress.New(
			progress.WithWidth(world.Splash.BarLength),
			progress.WithoutPercentage(),
			progress.WithSolidFill("6"),
		),
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys.Apply(msg, m.gameState.Phase, &m.inputFrame)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation tick and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Phase == core.PhaseTerminated {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.cfg.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.gameState.Phase == core.PhaseSplash {
		return m.splashView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, world config.Config, cfg core.RuntimeConfig) error {
	model := NewModel(g, world, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
