// File: render/layout.go
package render

import (
	"math"
	"unicode/utf8"

	"github.com/lguibr/pongduel/game"
)

const (
	RuneHorizontal = '─'
	RuneVertical   = '│'
	RuneCross      = '┼'
	RunePaddle     = '█'
	RuneBall       = '●'
)

// Cell is one character cell. A zero Ch is empty.
type Cell struct {
	Ch    rune
	Color game.Color
}

// Grid is a scene laid out on character cells, indexed [row][col].
type Grid [][]Cell

// Layout scales a scene onto cols x rows character cells. Shapes smaller than
// a cell still cover the cell holding their centre, so paddles and the ball
// never vanish at low resolutions.
func Layout(scene game.Scene, cols, rows int) Grid {
	if cols <= 0 || rows <= 0 || scene.Width <= 0 || scene.Height <= 0 {
		return Grid{}
	}
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]Cell, cols)
	}
	l := layouter{
		grid: g,
		sx:   float64(cols) / scene.Width,
		sy:   float64(rows) / scene.Height,
	}

	for _, line := range scene.Lines {
		l.line(line)
	}
	for _, box := range scene.Boxes {
		l.box(box)
	}
	for _, circle := range scene.Circles {
		l.circle(circle)
	}
	for _, text := range scene.Texts {
		l.text(text)
	}
	return g
}

type layouter struct {
	grid   Grid
	sx, sy float64
}

func (l layouter) cols() int { return len(l.grid[0]) }
func (l layouter) rows() int { return len(l.grid) }

func (l layouter) col(x float64) int { return clamp(int(x*l.sx), 0, l.cols()-1) }
func (l layouter) row(y float64) int { return clamp(int(y*l.sy), 0, l.rows()-1) }

func (l layouter) set(row, col int, ch rune, color game.Color) {
	if row < 0 || row >= l.rows() || col < 0 || col >= l.cols() {
		return
	}
	l.grid[row][col] = Cell{Ch: ch, Color: color}
}

// cellCenter returns the window coordinates of the middle of a cell.
func (l layouter) cellCenter(row, col int) (x, y float64) {
	return (float64(col) + 0.5) / l.sx, (float64(row) + 0.5) / l.sy
}

// line only handles axis-aligned segments, which is all a scene contains.
func (l layouter) line(line game.Line) {
	if line.From.Y == line.To.Y {
		row := l.row(line.From.Y)
		for col := l.col(math.Min(line.From.X, line.To.X)); col <= l.col(math.Max(line.From.X, line.To.X)); col++ {
			l.joinLine(row, col, RuneHorizontal, line.Color)
		}
		return
	}
	col := l.col(line.From.X)
	for row := l.row(math.Min(line.From.Y, line.To.Y)); row <= l.row(math.Max(line.From.Y, line.To.Y)); row++ {
		l.joinLine(row, col, RuneVertical, line.Color)
	}
}

func (l layouter) joinLine(row, col int, ch rune, color game.Color) {
	existing := l.grid[row][col].Ch
	if (existing == RuneHorizontal && ch == RuneVertical) || (existing == RuneVertical && ch == RuneHorizontal) {
		ch = RuneCross
	}
	l.set(row, col, ch, color)
}

func (l layouter) box(box game.Box) {
	r := box.Rect
	for row := l.row(r.Y); row <= l.row(r.Bottom()); row++ {
		for col := l.col(r.X); col <= l.col(r.Right()); col++ {
			x, y := l.cellCenter(row, col)
			if x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom() {
				l.set(row, col, RunePaddle, box.Color)
			}
		}
	}
	center := r.Center()
	l.set(l.row(center.Y), l.col(center.X), RunePaddle, box.Color)
}

func (l layouter) circle(c game.Circle) {
	for row := l.row(c.Center.Y - c.Radius); row <= l.row(c.Center.Y+c.Radius); row++ {
		for col := l.col(c.Center.X - c.Radius); col <= l.col(c.Center.X+c.Radius); col++ {
			x, y := l.cellCenter(row, col)
			if math.Hypot(x-c.Center.X, y-c.Center.Y) <= c.Radius {
				l.set(row, col, RuneBall, c.Color)
			}
		}
	}
	l.set(l.row(c.Center.Y), l.col(c.Center.X), RuneBall, c.Color)
}

// text rounds its row up so that text placed on a border line lands below it.
func (l layouter) text(t game.Text) {
	row := clamp(int(math.Ceil(t.Y*l.sy)), 0, l.rows()-1)
	start := l.col(t.X) - utf8.RuneCountInString(t.Value)/2
	col := start
	for _, ch := range t.Value {
		l.set(row, col, ch, t.Color)
		col++
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
