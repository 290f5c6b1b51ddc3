// File: game/paddle.go
package game

import (
	"fmt"

	"github.com/lguibr/pongduel/utils"
)

// Side identifies a paddle and the half of the arena it is confined to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return utils.RightLabel
	}
	return utils.LeftLabel
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Binding returns the keys that drive the paddle on this side.
func (s Side) Binding() Binding {
	if s == SideRight {
		return RightBinding
	}
	return LeftBinding
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case utils.LeftLabel:
		*s = SideLeft
	case utils.RightLabel:
		*s = SideRight
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}

type Paddle struct {
	Side      Side          `json:"side"`
	Position  utils.Vector2 `json:"position"` // Top-left corner
	Size      utils.Vector2 `json:"size"`
	Direction utils.Vector2 `json:"direction"` // Last normalized direction
	speed     float64
	home      utils.Vector2
	bounds    utils.Rect
}

// NewPaddle places a paddle at its home position on the given side.
func NewPaddle(side Side, rules utils.Rules) *Paddle {
	home := utils.Vector2{
		X: rules.PaddleInset,
		Y: rules.Window.Y/2 - rules.PaddleSize.Y/2,
	}
	bounds := rules.LeftHalf()
	if side == SideRight {
		home.X = rules.Window.X - rules.PaddleInset - rules.PaddleSize.X
		bounds = rules.RightHalf()
	}
	return &Paddle{
		Side:     side,
		Position: home,
		Size:     rules.PaddleSize,
		speed:    rules.PaddleSpeed,
		home:     home,
		bounds:   bounds,
	}
}

func (p *Paddle) Rect() utils.Rect {
	return utils.NewRect(p.Position.X, p.Position.Y, p.Size.X, p.Size.Y)
}

// Bounds is the half of the arena the paddle is clamped to.
func (p *Paddle) Bounds() utils.Rect { return p.bounds }

// Reset puts the paddle back at its home position.
func (p *Paddle) Reset() {
	p.Position = p.home
	p.Direction = utils.Vector2{}
}

// Direction sums one unit per held key on each axis. Up is negative Y.
func Direction(held KeySet, b Binding) utils.Vector2 {
	var dir utils.Vector2
	if held.Has(b.Up) {
		dir.Y--
	}
	if held.Has(b.Down) {
		dir.Y++
	}
	if held.Has(b.Left) {
		dir.X--
	}
	if held.Has(b.Right) {
		dir.X++
	}
	return dir
}

// Move advances the paddle by dt seconds according to the held keys and
// clamps it to its half of the arena. An axis only moves while one of its
// keys is held, whatever the stored direction.
func (p *Paddle) Move(held KeySet, dt float64) {
	binding := p.Side.Binding()
	p.Direction = utils.Normalize(Direction(held, binding))

	if binding.VerticalHeld(held) {
		p.Position.Y += p.speed * p.Direction.Y * dt
	}
	if binding.HorizontalHeld(held) {
		p.Position.X += p.speed * p.Direction.X * dt
	}

	p.clamp()
}

// clamp snaps the paddle back inside its bounds using four edge probes taken
// on the moved rectangle. Each axis snaps at most once.
func (p *Paddle) clamp() {
	rect := p.Rect()
	midX := rect.X + rect.Width/2
	midY := rect.Y + rect.Height/2

	top := utils.Vector2{X: midX, Y: rect.Y}
	bottom := utils.Vector2{X: midX, Y: rect.Bottom()}
	left := utils.Vector2{X: rect.X, Y: midY}
	right := utils.Vector2{X: rect.Right(), Y: midY}

	if !utils.PointInRect(top, p.bounds) {
		p.Position.Y = p.bounds.Y
	} else if !utils.PointInRect(bottom, p.bounds) {
		p.Position.Y = p.bounds.Bottom() - p.Size.Y
	}
	if !utils.PointInRect(left, p.bounds) {
		p.Position.X = p.bounds.X
	} else if !utils.PointInRect(right, p.bounds) {
		p.Position.X = p.bounds.Right() - p.Size.X
	}
}
