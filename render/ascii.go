// File: render/ascii.go
package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/pongduel/game"
)

// RGBPixel is a 24-bit colour.
type RGBPixel struct {
	R, G, B uint8
}

var palette = map[game.Color]RGBPixel{
	game.ColorWhite:  {R: 255, G: 255, B: 255},
	game.ColorYellow: {R: 255, G: 255, B: 0},
}

// ColorOf returns the RGB value of a scene colour.
func ColorOf(c game.Color) RGBPixel {
	if p, ok := palette[c]; ok {
		return p
	}
	return palette[game.ColorWhite]
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

const ansiReset = "\033[0m"

// RenderToASCII turns a grid into text, one line per row. With colored set,
// non-white cells are wrapped in 24-bit ANSI colour codes.
func RenderToASCII(grid Grid, colored bool) string {
	var ascii strings.Builder
	for _, row := range grid {
		for _, cell := range row {
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			if colored && cell.Ch != 0 && cell.Color != game.ColorWhite {
				ascii.WriteString(rgbToAnsi(ColorOf(cell.Color)))
				ascii.WriteRune(ch)
				ascii.WriteString(ansiReset)
				continue
			}
			ascii.WriteRune(ch)
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}

// SceneToASCII lays out and renders a scene in one call.
func SceneToASCII(scene game.Scene, cols, rows int, colored bool) string {
	return RenderToASCII(Layout(scene, cols, rows), colored)
}
