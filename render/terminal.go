// File: render/terminal.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongduel/game"
)

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	terminalColors  = map[game.Color]tcell.Color{
		game.ColorWhite:  tcell.ColorWhite,
		game.ColorYellow: tcell.ColorYellow,
	}
)

// Terminal draws scenes on a tcell screen, scaled to the current screen
// size.
type Terminal struct {
	screen tcell.Screen
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Draw replaces the screen contents with the scene and shows it.
func (t *Terminal) Draw(scene game.Scene) {
	cols, rows := t.screen.Size()
	t.screen.Fill(' ', backgroundStyle)

	for y, row := range Layout(scene, cols, rows) {
		for x, cell := range row {
			if cell.Ch == 0 {
				continue
			}
			t.screen.SetContent(x, y, cell.Ch, nil, StyleOf(cell.Color))
		}
	}
	t.screen.Show()
}

// StyleOf returns the tcell style used for a scene colour.
func StyleOf(c game.Color) tcell.Style {
	color, ok := terminalColors[c]
	if !ok {
		color = tcell.ColorWhite
	}
	return backgroundStyle.Foreground(color)
}
