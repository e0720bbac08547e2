package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmukelyan/flappy-term/internal/core"
)

// KeyMap declares the game's key bindings.
type KeyMap struct {
	Flap key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑/w", "flap"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Apply maps a key message into the pending input frame. Quit is honored
// in every phase. On the failure screen any non-quit key is the restart
// decision; elsewhere only the flap binding does anything.
func (k KeyMap) Apply(msg tea.KeyMsg, phase core.Phase, frame *core.InputFrame) {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
	case phase == core.PhaseFailed:
		frame.Set(core.ActionRestart)
	case key.Matches(msg, k.Flap):
		frame.Set(core.ActionFlap)
	}
}
