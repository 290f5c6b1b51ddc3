package utils

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// PointInRect reports whether p lies inside r, edges included.
func PointInRect(p Vector2, r Rect) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// CircleIntersectsRect reports whether the circle at center with the given
// radius overlaps r. The closest point of r to the center is found by
// clamping, and the overlap holds when it is within the radius.
func CircleIntersectsRect(center Vector2, radius float64, r Rect) bool {
	closest := Vector2{
		X: math.Min(math.Max(center.X, r.X), r.Right()),
		Y: math.Min(math.Max(center.Y, r.Y), r.Bottom()),
	}
	dx := center.X - closest.X
	dy := center.Y - closest.Y
	return dx*dx+dy*dy <= radius*radius
}
