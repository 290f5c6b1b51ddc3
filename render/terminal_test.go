package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/pongduel/game"
	"github.com/lguibr/pongduel/utils"
)

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminal_DrawMatchesLayout(t *testing.T) {
	screen := newSimulationScreen(t)
	scene := newScene(t, utils.ModeDuel)

	NewTerminal(screen).Draw(scene)

	cols, rows := screen.Size()
	grid := Layout(scene, cols, rows)
	for y, row := range grid {
		for x, cell := range row {
			mainc, _, style, _ := screen.GetContent(x, y)
			if cell.Ch == 0 {
				assert.Equal(t, ' ', mainc, "cell %d,%d", x, y)
				continue
			}
			assert.Equal(t, cell.Ch, mainc, "cell %d,%d", x, y)
			fg, bg, _ := style.Decompose()
			assert.Equal(t, terminalColors[cell.Color], fg, "cell %d,%d", x, y)
			assert.Equal(t, tcell.ColorBlack, bg, "cell %d,%d", x, y)
		}
	}
}

func TestTerminal_RedrawClearsPreviousFrame(t *testing.T) {
	screen := newSimulationScreen(t)
	term := NewTerminal(screen)

	term.Draw(game.Scene{
		Width:   600,
		Height:  400,
		Circles: []game.Circle{{Center: utils.Vector2{X: 300, Y: 200}, Radius: 5}},
	})
	cols, rows := screen.Size()
	x, y := int(300*float64(cols)/600), int(200*float64(rows)/400)
	mainc, _, _, _ := screen.GetContent(x, y)
	require.Equal(t, RuneBall, mainc)

	term.Draw(game.Scene{Width: 600, Height: 400})
	mainc, _, _, _ = screen.GetContent(x, y)
	assert.Equal(t, ' ', mainc)
}

func TestStyleOf(t *testing.T) {
	fg, _, _ := StyleOf(game.ColorYellow).Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
	fg, _, _ = StyleOf(game.Color(42)).Decompose()
	assert.Equal(t, tcell.ColorWhite, fg)
}
