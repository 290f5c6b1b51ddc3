package utils

import "time"

// Window and arena layout. The arena is inset from the window by the border margin.
const (
	WindowWidth   = 600.0
	WindowHeight  = 400.0
	BorderMarginX = 17.0
	BorderMarginY = 17.0
)

// Paddle and ball geometry.
const (
	PaddleWidth      = 10.0
	PaddleHeight     = 50.0
	PaddleSpeed      = 105.0
	PaddleHomeInset  = 50.0 // distance from the window edge to a paddle's home x
	BallRadius       = 5.0
	BallSpeedX       = 115.0
	BallSpeedY       = 115.0
	DiagonalProbeArg = 45.0 // argument fed to cos/sin for the diagonal ball probes
)

// Match rules.
const (
	WinningScore = 7
	GracePeriod  = time.Second
)

// Text shown by the renderers.
const (
	Title        = "PONG"
	ContinueText = "press ENTER to start"
	ScoreFormat  = "%02d - %02d"
	WinnerFormat = "%s WINS"
	FontSize     = 16
	BannerSize   = 32
)

const (
	LeftLabel  = "LEFT"
	RightLabel = "RIGHT"
)

// MinDirectionMagnitude is the length below which a direction is left unnormalized.
const MinDirectionMagnitude = 1e-3
