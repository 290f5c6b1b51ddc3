// File: window/window.go
package window

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lguibr/pongduel/game"
	"github.com/lguibr/pongduel/render"
	"github.com/lguibr/pongduel/utils"
)

const (
	lineWidth = 1
	// Metrics of basicfont.Face7x13.
	glyphWidth  = 7
	glyphHeight = 13
	glyphAscent = 11
)

var bindings = map[ebiten.Key]game.Key{
	ebiten.KeyW:          game.KeyW,
	ebiten.KeyS:          game.KeyS,
	ebiten.KeyA:          game.KeyA,
	ebiten.KeyD:          game.KeyD,
	ebiten.KeyArrowUp:    game.KeyArrowUp,
	ebiten.KeyArrowDown:  game.KeyArrowDown,
	ebiten.KeyArrowLeft:  game.KeyArrowLeft,
	ebiten.KeyArrowRight: game.KeyArrowRight,
	ebiten.KeyEnter:      game.KeyEnter,
}

// ControlsFrom builds the controls of a frame from key state queries.
func ControlsFrom(pressed, justPressed func(ebiten.Key) bool) game.Controls {
	var ctrl game.Controls
	for ek, k := range bindings {
		if pressed(ek) {
			ctrl.Held = ctrl.Held.With(k)
		}
		if justPressed(ek) {
			ctrl.Pressed = ctrl.Pressed.With(k)
		}
	}
	return ctrl
}

// Window is an ebiten game driving a session.
type Window struct {
	ctx     context.Context
	session *game.Session
	scene   game.Scene
	width   int
	height  int
}

func New(ctx context.Context, session *game.Session) *Window {
	rules := session.Game().Rules
	return &Window{
		ctx:     ctx,
		session: session,
		width:   int(rules.Window.X),
		height:  int(rules.Window.Y),
	}
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx is cancelled.
func (w *Window) Run(cfg utils.Config) error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(utils.Title)
	ebiten.SetTPS(cfg.TargetFPS)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (w *Window) Update() error {
	select {
	case <-w.ctx.Done():
		log.Printf("Window: stopping: %v", w.ctx.Err())
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("Window: quit key pressed")
		return ebiten.Termination
	}
	w.scene = w.session.Tick(ControlsFrom(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, l := range w.scene.Lines {
		vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y), lineWidth, rgba(l.Color), false)
	}
	for _, b := range w.scene.Boxes {
		vector.DrawFilledRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.Width), float32(b.Rect.Height), rgba(b.Color), false)
	}
	for _, c := range w.scene.Circles {
		vector.DrawFilledCircle(screen, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), rgba(c.Color), true)
	}
	for _, t := range w.scene.Texts {
		x, y, scale := textOrigin(t)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(rgba(t.Color))
		text.DrawWithOptions(screen, t.Value, basicfont.Face7x13, op)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// textOrigin returns the baseline origin and the glyph scale of a text laid
// out with basicfont.Face7x13.
func textOrigin(t game.Text) (x, y, scale float64) {
	scale = 1
	if t.Size > 0 {
		scale = float64(t.Size) / glyphHeight
	}
	width := float64(len([]rune(t.Value))*glyphWidth) * scale
	return t.X - width/2, t.Y + glyphAscent*scale, scale
}

func rgba(c game.Color) color.RGBA {
	p := render.ColorOf(c)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}
