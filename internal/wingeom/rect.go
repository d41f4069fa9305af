// Package wingeom provides virtual-desktop rectangle and point math.
package wingeom

import "fmt"

// Point is a position in virtual-desktop coordinates.
type Point struct {
	X int32
	Y int32
}

// Rect is a screen-space rectangle, exclusive on the right and bottom
// edges like the Win32 RECT it mirrors. Coordinates can be negative on
// multi-monitor desktops.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no positive area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Area returns the rectangle area in square pixels.
func (r Rect) Area() int64 {
	if r.Empty() {
		return 0
	}
	return int64(r.Width()) * int64(r.Height())
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left + r.Right) / 2,
		Y: (r.Top + r.Bottom) / 2,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// NearlyEqual reports whether every edge of r is within tol pixels of the
// corresponding edge of other. Borderless-fullscreen windows often miss
// monitor bounds by a handful of pixels under DPI scaling.
func (r Rect) NearlyEqual(other Rect, tol int32) bool {
	return near(r.Left, other.Left, tol) &&
		near(r.Top, other.Top, tol) &&
		near(r.Right, other.Right, tol) &&
		near(r.Bottom, other.Bottom, tol)
}

// near reports whether two coordinates differ by at most tol pixels.
func near(a, b, tol int32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// CoverageOf returns the ratio of r's area to outer's area. Positions are
// ignored; the caller decides whether overlap matters.
func (r Rect) CoverageOf(outer Rect) float64 {
	oa := outer.Area()
	if oa == 0 {
		return 0
	}
	return float64(r.Area()) / float64(oa)
}

// SampleGrid returns an n-by-n grid of interior points, inset from every
// edge by the given fraction of the rectangle's span. A grid over an empty
// rectangle is empty.
func (r Rect) SampleGrid(n int, margin float64) []Point {
	if n <= 0 || r.Empty() {
		return nil
	}
	if margin < 0 {
		margin = 0
	}
	if margin >= 0.5 {
		margin = 0.49
	}

	insetX := float64(r.Width()) * margin
	insetY := float64(r.Height()) * margin
	left := float64(r.Left) + insetX
	top := float64(r.Top) + insetY
	spanX := float64(r.Width()) - 2*insetX
	spanY := float64(r.Height()) - 2*insetY

	pts := make([]Point, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			pts = append(pts, Point{
				X: int32(left + gridOffset(col, n, spanX)),
				Y: int32(top + gridOffset(row, n, spanY)),
			})
		}
	}
	return pts
}

// gridOffset returns the offset of grid slot i of n across a span,
// placing a single slot at the span center.
func gridOffset(i, n int, span float64) float64 {
	if n == 1 {
		return span / 2
	}
	return float64(i) * span / float64(n-1)
}

// String formats the rectangle as corner coordinates with dimensions.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d) %dx%d", r.Left, r.Top, r.Right, r.Bottom, r.Width(), r.Height())
}
