package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is returned by Rules.Validate for a layout the physics cannot support.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the fixed geometry and match constants of a game. They are not
// user configurable; StandardRules is the only production value.
type Rules struct {
	Window        Vector2       `json:"window"`
	BorderMargin  Vector2       `json:"borderMargin"`
	PaddleSize    Vector2       `json:"paddleSize"`
	PaddleSpeed   float64       `json:"paddleSpeed"`
	PaddleInset   float64       `json:"paddleInset"`
	BallRadius    float64       `json:"ballRadius"`
	BallSpeed     Vector2       `json:"ballSpeed"`
	WinningScore  int           `json:"winningScore"`
	GracePeriod   time.Duration `json:"gracePeriod"`
	DiagonalAngle float64       `json:"diagonalAngle"`
}

// StandardRules returns the rules built from the package constants.
func StandardRules() Rules {
	return Rules{
		Window:        Vector2{X: WindowWidth, Y: WindowHeight},
		BorderMargin:  Vector2{X: BorderMarginX, Y: BorderMarginY},
		PaddleSize:    Vector2{X: PaddleWidth, Y: PaddleHeight},
		PaddleSpeed:   PaddleSpeed,
		PaddleInset:   PaddleHomeInset,
		BallRadius:    BallRadius,
		BallSpeed:     Vector2{X: BallSpeedX, Y: BallSpeedY},
		WinningScore:  WinningScore,
		GracePeriod:   GracePeriod,
		DiagonalAngle: DiagonalProbeArg,
	}
}

// Arena is the playable rectangle inside the border margin.
func (r Rules) Arena() Rect {
	return Rect{
		X:      r.BorderMargin.X,
		Y:      r.BorderMargin.Y,
		Width:  r.Window.X - r.BorderMargin.X*2,
		Height: r.Window.Y - r.BorderMargin.Y*2,
	}
}

// HalfWidth is the width of each arena half.
func (r Rules) HalfWidth() float64 {
	return r.Window.X/2 - r.BorderMargin.X
}

// LeftHalf is the region the left paddle is clamped to.
func (r Rules) LeftHalf() Rect {
	arena := r.Arena()
	return Rect{X: r.BorderMargin.X, Y: arena.Y, Width: r.HalfWidth(), Height: arena.Height}
}

// RightHalf is the region the right paddle is clamped to.
func (r Rules) RightHalf() Rect {
	arena := r.Arena()
	return Rect{X: r.Window.X / 2, Y: arena.Y, Width: r.HalfWidth(), Height: arena.Height}
}

// Center is the middle of the window, where the ball is served from.
func (r Rules) Center() Vector2 {
	return Vector2{X: r.Window.X / 2, Y: r.Window.Y / 2}
}

// Validate rejects layouts that make the clamp rules contradictory.
func (r Rules) Validate() error {
	switch {
	case r.BorderMargin.X <= 0 || r.BorderMargin.Y <= 0:
		return fmt.Errorf("%w: border margin must be positive, got %v", ErrInvalidRules, r.BorderMargin)
	case r.HalfWidth() <= 0:
		return fmt.Errorf("%w: arena half width %.2f is not positive", ErrInvalidRules, r.HalfWidth())
	case r.PaddleSize.X <= 0 || r.PaddleSize.Y <= 0:
		return fmt.Errorf("%w: paddle size must be positive, got %v", ErrInvalidRules, r.PaddleSize)
	case r.PaddleSize.Y >= r.Arena().Height:
		return fmt.Errorf("%w: paddle height %.2f does not fit arena height %.2f", ErrInvalidRules, r.PaddleSize.Y, r.Arena().Height)
	case r.PaddleSize.X >= r.HalfWidth():
		return fmt.Errorf("%w: paddle width %.2f does not fit half width %.2f", ErrInvalidRules, r.PaddleSize.X, r.HalfWidth())
	case r.BallRadius <= 0 || r.BallRadius*2 >= r.Arena().Height:
		return fmt.Errorf("%w: ball radius %.2f", ErrInvalidRules, r.BallRadius)
	case r.PaddleSpeed < 0:
		return fmt.Errorf("%w: paddle speed %.2f is negative", ErrInvalidRules, r.PaddleSpeed)
	case r.WinningScore <= 0:
		return fmt.Errorf("%w: winning score %d", ErrInvalidRules, r.WinningScore)
	case r.GracePeriod < 0:
		return fmt.Errorf("%w: grace period %s", ErrInvalidRules, r.GracePeriod)
	}
	return nil
}
