package pane

import "math"

// Dist returns the Euclidean distance between two points.
func Dist(p, q Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// RectToPoly returns the polygon outlining the pixels of r, for polygon
// drawing. A rectangle's right and bottom edges lie outside the drawn area,
// while every edge of a polygon is drawn, so the far corners are pulled in by
// one pixel. If closed, the first point is repeated at the end.
func RectToPoly(r Rect, closed bool) []Point {
	p := []Point{
		{r.X, r.Y},
		{r.X + r.W - 1, r.Y},
		{r.X + r.W - 1, r.Y + r.H - 1},
		{r.X, r.Y + r.H - 1},
	}
	if closed {
		p = append(p, p[0])
	}
	return p
}

// RectInsetFramePolys returns the pair of L-shaped polygons that paint an
// inset frame of the given thickness around r: the first covers the left and
// top edges, the second the right and bottom. Painting the first with the
// theme highlight and the second with the lowlight produces a raised bevel;
// swapping them produces a sunken one.
func RectInsetFramePolys(r Rect, thickness int) (topLeft, bottomRight []Point) {
	left := r.X
	top := r.Y
	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1
	t := thickness

	topLeft = []Point{
		{left, bottom},
		{left, top},
		{right, top},
		{right, top + t - 1},
		{left + t - 1, top + t - 1},
		{left + t - 1, bottom},
	}
	bottomRight = []Point{
		{right, top},
		{right, bottom},
		{left, bottom},
		{left, bottom - t + 1},
		{right - t + 1, bottom - t + 1},
		{right - t + 1, top},
	}
	return topLeft, bottomRight
}
