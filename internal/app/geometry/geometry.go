package geometry

import "math"

// Point is a position in control-local cell coordinates
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair, never negative once normalized
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner
type Rect struct {
	Origin Point
	Size   Size
}

// Translate returns the point moved by dx, dy
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Normalize floors both dimensions at zero
func (s Size) Normalize() Size {
	return Size{Width: math.Max(0, s.Width), Height: math.Max(0, s.Height)}
}

// NewRect builds a normalized rectangle
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		Origin: Point{X: x, Y: y},
		Size:   Size{Width: width, Height: height}.Normalize(),
	}
}

// CenteredAt builds a rectangle of the given size around a center point
func CenteredAt(center Point, size Size) Rect {
	size = size.Normalize()

	return Rect{
		Origin: Point{X: center.X - size.Width/2, Y: center.Y - size.Height/2},
		Size:   size,
	}
}

// Width returns the rectangle width
func (r Rect) Width() float64 {
	return r.Size.Width
}

// Height returns the rectangle height
func (r Rect) Height() float64 {
	return r.Size.Height
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.Height
}

// Clamp limits v to [lo, hi]; when the range is inverted lo wins
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
