package touchtrail

// Intersection returns the common region of two rectangles.
// When rectangles only touch, the region is degenerate (zero width and/or height) but still reported.
// Second value is false when rectangles do not touch at all.
func (r Rectangle) Intersection(other Rectangle) (Rectangle, bool) {
	if !r.IsTouching(other) {
		return Rectangle{}, false
	}
	xA := maxFloat64(r.X, other.X)
	yA := maxFloat64(r.Y, other.Y)
	xB := minFloat64(r.Right(), other.Right())
	yB := minFloat64(r.Bottom(), other.Bottom())
	return Rectangle{
		X:      xA,
		Y:      yA,
		Width:  xB - xA,
		Height: yB - yA,
	}, true
}

// IoU calculates Intersection over Union between two rectangles.
// Returns 0 for rectangles which only touch, and for degenerate (zero-area) pairs.
func IoU(r1, r2 Rectangle) float64 {
	inter, ok := r1.Intersection(r2)
	if !ok {
		return 0.0
	}
	interArea := inter.Area()
	if interArea == 0 {
		return 0.0
	}
	union := r1.Area() + r2.Area() - interArea
	if union <= 0 {
		return 0.0
	}
	return interArea / union
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
