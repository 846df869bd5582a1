package gamemath

import "github.com/yohamta/donburi/features/math"

// Rect is an axis aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() math.Vec2 {
	return math.NewVec2(r.X+r.W/2, r.Y+r.H/2)
}

// Overlaps reports whether r and o share interior area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
