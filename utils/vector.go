package utils

import "math"

// Vector2 is a 2D float vector used for positions, velocities and directions.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVector2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// Magnitude returns the euclidean length of v.
func Magnitude(v Vector2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize scales v to unit length. Vectors whose length does not exceed
// MinDirectionMagnitude are returned unchanged, so an idle direction stays zero.
func Normalize(v Vector2) Vector2 {
	magnitude := Magnitude(v)
	if magnitude > MinDirectionMagnitude {
		return Vector2{X: v.X / magnitude, Y: v.Y / magnitude}
	}
	return v
}

func SumVectors(a, b Vector2) Vector2 {
	return Vector2{X: a.X + b.X, Y: a.Y + b.Y}
}

func SubtractVectors(a, b Vector2) Vector2 {
	return Vector2{X: a.X - b.X, Y: a.Y - b.Y}
}

func MultiplyVectorByScalar(v Vector2, scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

func Distance(a, b Vector2) float64 {
	return Magnitude(SubtractVectors(b, a))
}
