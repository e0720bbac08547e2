package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hmukelyan/flappy-term/internal/core"
)

// bannerLines is the splash title. ASCII art generated by patorjk.com.
var bannerLines = []string{
	" ___ _                       ___ _        _ ",
	"| __| |__ _ _ __ _ __ _  _  | _ |_)_ _ __| |",
	"| _|| / _` | '_ \\ '_ \\ || | | _ \\ | '_/ _` |",
	"|_| |_\\__,_| .__/ .__/\\_, | |___/_|_| \\__,_|",
	"           |_|  |_|   |__/                  ",
}

const splashHint = "Press <space> to flap!"

// splashView renders the intro screen: the title banner, the flap hint,
// and a time-paced progress bar that fills over the splash duration.
func (m Model) splashView() string {
	rows := m.world.World.Rows
	cols := m.world.World.Cols

	// Lay out the static text on a plain buffer first.
	screen := core.NewScreen(cols, rows)
	bannerTop := rows/2 - 6
	for i, line := range bannerLines {
		screen.DrawTextCentered(bannerTop+i, line)
	}
	screen.DrawTextCentered(rows/2+1, splashHint)

	// Swap the progress bar into its row; the bar carries its own styling
	// so it cannot live in the rune buffer.
	lines := strings.Split(screen.String(), "\n")
	barRow := m.world.Splash.BarRow
	if barRow >= 0 && barRow < len(lines) {
		bar := m.splash.ViewAs(m.game.SplashProgress())
		lines[barRow] = lipgloss.PlaceHorizontal(cols, lipgloss.Center, bar)
	}
	return strings.Join(lines, "\n")
}
