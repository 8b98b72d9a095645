package touchtrail

import (
	"image"
	"math"

	"github.com/pkg/errors"
)

// Rectangle is an axis-aligned bounding box.
// X and Y are the left and top edges: origin is the top-left corner of the image and Y grows downward.
// Whether the values are ratios of the image size or absolute pixels is up to the caller.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X:      float64(rect.Min.X),
		Y:      float64(rect.Min.Y),
		Width:  float64(rect.Dx()),
		Height: float64(rect.Dy()),
	}
}

// Left returns left edge
func (r Rectangle) Left() float64 {
	return r.X
}

// Top returns top edge
func (r Rectangle) Top() float64 {
	return r.Y
}

// Right returns right edge
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

// Bottom returns bottom edge
func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns center of the rectangle
func (r Rectangle) Center() Point {
	return Point{
		X: r.X + r.Width/2.0,
		Y: r.Y + r.Height/2.0,
	}
}

// Area returns width*height
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Validate checks that the extents are non-negative and every field is a finite number.
// Zero width or height is allowed: such box is a segment or a point.
func (r Rectangle) Validate() error {
	fields := [4]struct {
		name  string
		value float64
	}{
		{"left", r.X},
		{"top", r.Y},
		{"width", r.Width},
		{"height", r.Height},
	}
	for _, field := range fields {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return errors.Wrapf(ErrInvalidGeometry, "%s is not a finite number: %v", field.name, field.value)
		}
	}
	if r.Width < 0 {
		return errors.Wrapf(ErrInvalidGeometry, "negative width: %v", r.Width)
	}
	if r.Height < 0 {
		return errors.Wrapf(ErrInvalidGeometry, "negative height: %v", r.Height)
	}
	return nil
}

// IsTouching returns true if closed regions of both rectangles share at least one point.
// Contact along an edge or at a single corner counts as touching.
func (r Rectangle) IsTouching(other Rectangle) bool {
	separated := r.Right() < other.X ||
		r.X > other.Right() ||
		r.Bottom() < other.Y ||
		r.Y > other.Bottom()
	return !separated
}

// Translate returns copy of the rectangle moved by (dx, dy)
func (r Rectangle) Translate(dx, dy float64) Rectangle {
	return Rectangle{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width,
		Height: r.Height,
	}
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2))
}
