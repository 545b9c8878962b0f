package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point2D represents a 2D coordinate in meters.
// Points serialize as [x, y] pairs on the wire.
type Point2D struct {
	X float64
	Y float64
}

func (p Point2D) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point2D) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("point must be an [x, y] pair: %w", err)
	}
	p.X = pair[0]
	p.Y = pair[1]
	return nil
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X      float64 `json:"x"`      // m
	Y      float64 `json:"y"`      // m
	Width  float64 `json:"width"`  // m
	Height float64 `json:"height"` // m
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// AspectRatio returns width/height.
func (r Rect) AspectRatio() float64 {
	if r.Height == 0 {
		return 0
	}
	return r.Width / r.Height
}

// Contains reports whether the point lies inside the rectangle within eps.
func (r Rect) Contains(p Point2D, eps float64) bool {
	return p.X >= r.X-eps && p.X <= r.Right()+eps &&
		p.Y >= r.Y-eps && p.Y <= r.Top()+eps
}

// Intersects reports whether the two rectangles overlap with positive area.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Top() && other.Y < r.Top()
}

// IntersectionArea returns the overlapping area of the two rectangles.
func (r Rect) IntersectionArea(other Rect) float64 {
	w := Overlap1D(r.X, r.Right(), other.X, other.Right())
	h := Overlap1D(r.Y, r.Top(), other.Y, other.Top())
	return w * h
}

// SplitAtX cuts the rectangle vertically at absolute coordinate x.
func (r Rect) SplitAtX(x float64) (left, right Rect) {
	left = Rect{X: r.X, Y: r.Y, Width: x - r.X, Height: r.Height}
	right = Rect{X: x, Y: r.Y, Width: r.Right() - x, Height: r.Height}
	return left, right
}

// SplitAtY cuts the rectangle horizontally at absolute coordinate y.
func (r Rect) SplitAtY(y float64) (bottom, top Rect) {
	bottom = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: y - r.Y}
	top = Rect{X: r.X, Y: y, Width: r.Width, Height: r.Top() - y}
	return bottom, top
}

// Overlap1D returns the length of the overlap between intervals [aMin, aMax]
// and [bMin, bMax], or 0 when they are disjoint.
func Overlap1D(aMin, aMax, bMin, bMax float64) float64 {
	lo := math.Max(aMin, bMin)
	hi := math.Min(aMax, bMax)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// Polygon represents a closed ring as a sequence of 2D points.
// The ring is implicitly closed: the last point connects back to the first.
type Polygon []Point2D

// RectPolygon returns the four-point counter-clockwise ring of a rectangle,
// starting at the bottom-left corner. Edge 0 runs along the bottom.
func RectPolygon(r Rect) Polygon {
	return Polygon{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Top()},
		{X: r.X, Y: r.Top()},
	}
}

// Area returns the enclosed area via the shoelace formula.
func (poly Polygon) Area() float64 {
	if len(poly) < 3 {
		return 0
	}
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

func (poly Polygon) Perimeter() float64 {
	var total float64
	for i := range poly {
		total += poly.EdgeLength(i)
	}
	return total
}

// Bounds returns the axis-aligned bounding rectangle.
func (poly Polygon) Bounds() Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := poly[0].X, poly[0].Y
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Edge returns the endpoints of edge i, where edge i runs from point i to
// point (i+1) mod len.
func (poly Polygon) Edge(i int) (Point2D, Point2D) {
	if len(poly) == 0 {
		return Point2D{}, Point2D{}
	}
	a := poly[i%len(poly)]
	b := poly[(i+1)%len(poly)]
	return a, b
}

func (poly Polygon) EdgeLength(i int) float64 {
	a, b := poly.Edge(i)
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func (poly Polygon) Centroid() Point2D {
	if len(poly) == 0 {
		return Point2D{}
	}
	var cx, cy float64
	for _, p := range poly {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(poly))
	return Point2D{X: cx / n, Y: cy / n}
}

// IsAxisAlignedRect reports whether the polygon is a four-point axis-aligned
// rectangle with positive area. Every edge must be horizontal or vertical
// within eps.
func (poly Polygon) IsAxisAlignedRect(eps float64) bool {
	if len(poly) != 4 {
		return false
	}
	for i := range poly {
		a, b := poly.Edge(i)
		dx := math.Abs(b.X - a.X)
		dy := math.Abs(b.Y - a.Y)
		if dx > eps && dy > eps {
			return false
		}
		if dx <= eps && dy <= eps {
			return false // degenerate edge
		}
	}
	return poly.Area() > eps
}

// Translate shifts all points by dx, dy.
func (poly Polygon) Translate(dx, dy float64) Polygon {
	result := make(Polygon, len(poly))
	for i, p := range poly {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}
