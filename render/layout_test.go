package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/pongduel/game"
	"github.com/lguibr/pongduel/utils"
)

func newScene(t *testing.T, mode string) game.Scene {
	t.Helper()
	g := game.New(utils.StandardRules(), mode, rand.New(rand.NewSource(1)))
	return g.Scene()
}

func rowText(grid Grid, row int) string {
	var b strings.Builder
	for _, cell := range grid[row] {
		if cell.Ch == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(cell.Ch)
	}
	return b.String()
}

func TestLayout_EmptyTarget(t *testing.T) {
	scene := newScene(t, utils.ModeDuel)
	assert.Empty(t, Layout(scene, 0, 24))
	assert.Empty(t, Layout(scene, 80, 0))
	assert.Empty(t, Layout(game.Scene{}, 80, 24))
}

func TestLayout_Dimensions(t *testing.T) {
	grid := Layout(newScene(t, utils.ModeDuel), 80, 24)
	require.Len(t, grid, 24)
	for _, row := range grid {
		assert.Len(t, row, 80)
	}
}

func TestLayout_Borders(t *testing.T) {
	grid := Layout(newScene(t, utils.ModeDuel), 80, 24)

	// Margins of 17 land on row 1 and row 22 at this scale.
	assert.Equal(t, RuneHorizontal, grid[1][2].Ch)
	assert.Equal(t, RuneHorizontal, grid[1][77].Ch)
	assert.Equal(t, RuneHorizontal, grid[22][2].Ch)
	assert.Equal(t, Cell{}, grid[1][1])
	assert.Equal(t, Cell{}, grid[1][78])

	assert.Equal(t, RuneCross, grid[1][40].Ch)
	assert.Equal(t, RuneCross, grid[22][40].Ch)
	assert.Equal(t, RuneVertical, grid[5][40].Ch)
}

func TestLayout_PaddlesAndBall(t *testing.T) {
	grid := Layout(newScene(t, utils.ModeDuel), 80, 24)

	for row := 10; row <= 13; row++ {
		assert.Equal(t, RunePaddle, grid[row][7].Ch, "left paddle row %d", row)
		assert.Equal(t, RunePaddle, grid[row][72].Ch, "right paddle row %d", row)
	}
	assert.Equal(t, Cell{}, grid[12][6])
	assert.Equal(t, Cell{}, grid[9][7])

	assert.Equal(t, RuneBall, grid[12][40].Ch)
}

func TestLayout_SoloHasOnePaddle(t *testing.T) {
	grid := Layout(newScene(t, utils.ModeSolo), 80, 24)
	assert.Equal(t, RunePaddle, grid[12][7].Ch)
	assert.Equal(t, Cell{}, grid[12][72])
}

func TestLayout_Text(t *testing.T) {
	grid := Layout(newScene(t, utils.ModeDuel), 80, 24)

	assert.Equal(t, "00 - 00", strings.TrimSpace(rowText(grid, 0)))
	assert.Equal(t, "PONG", strings.TrimSpace(rowText(grid, 23)))
	assert.Contains(t, rowText(grid, 18), utils.ContinueText)
	assert.Equal(t, game.ColorYellow, grid[18][30].Color)
	assert.Equal(t, 'p', grid[18][30].Ch)
}

func TestLayout_TinyShapesStillVisible(t *testing.T) {
	scene := game.Scene{
		Width:   600,
		Height:  400,
		Circles: []game.Circle{{Center: utils.Vector2{X: 303, Y: 203}, Radius: 1}},
		Boxes:   []game.Box{{Rect: utils.NewRect(100, 100, 1, 1)}},
	}
	grid := Layout(scene, 10, 5)
	assert.Equal(t, RuneBall, grid[2][5].Ch)
	assert.Equal(t, RunePaddle, grid[1][1].Ch)
}

func TestLayout_ClampsOutsideShapes(t *testing.T) {
	scene := game.Scene{
		Width:   600,
		Height:  400,
		Circles: []game.Circle{{Center: utils.Vector2{X: -50, Y: 900}, Radius: 5}},
		Texts:   []game.Text{{Value: "a long line of text that does not fit", X: 300, Y: 0}},
	}
	assert.NotPanics(t, func() {
		grid := Layout(scene, 10, 5)
		assert.Equal(t, RuneBall, grid[4][0].Ch)
	})
}
