package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestPoint2DMarshalsAsPair(t *testing.T) {
	p := Point2D{X: 2.5, Y: 4}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "[2.5,4]" {
		t.Errorf("expected [2.5,4], got %s", data)
	}

	var back Point2D
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back != p {
		t.Errorf("round trip mismatch: %+v != %+v", back, p)
	}
}

func TestPoint2DUnmarshalRejectsObject(t *testing.T) {
	var p Point2D
	if err := json.Unmarshal([]byte(`{"x":1,"y":2}`), &p); err == nil {
		t.Fatal("expected error for non-pair point")
	}
}

func TestRectBasics(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 4, Height: 3}
	if r.Area() != 12 {
		t.Errorf("expected area 12, got %g", r.Area())
	}
	if r.Right() != 5 {
		t.Errorf("expected right 5, got %g", r.Right())
	}
	if r.Top() != 5 {
		t.Errorf("expected top 5, got %g", r.Top())
	}
	c := r.Center()
	if c.X != 3 || c.Y != 3.5 {
		t.Errorf("expected center (3, 3.5), got (%g, %g)", c.X, c.Y)
	}
	if math.Abs(r.AspectRatio()-4.0/3.0) > 1e-12 {
		t.Errorf("expected aspect 4/3, got %g", r.AspectRatio())
	}
}

func TestRectSplitTilesParent(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 8}

	left, right := r.SplitAtX(4)
	if left.Width != 4 || right.Width != 6 {
		t.Errorf("vertical split widths wrong: %g, %g", left.Width, right.Width)
	}
	if left.Area()+right.Area() != r.Area() {
		t.Errorf("vertical split does not tile: %g + %g != %g", left.Area(), right.Area(), r.Area())
	}
	if right.X != left.Right() {
		t.Errorf("children do not share the split coordinate: %g != %g", right.X, left.Right())
	}

	bottom, top := r.SplitAtY(3)
	if bottom.Height != 3 || top.Height != 5 {
		t.Errorf("horizontal split heights wrong: %g, %g", bottom.Height, top.Height)
	}
	if bottom.Area()+top.Area() != r.Area() {
		t.Errorf("horizontal split does not tile: %g + %g != %g", bottom.Area(), top.Area(), r.Area())
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 5, Height: 5}

	tests := []struct {
		name       string
		b          Rect
		intersects bool
		area       float64
	}{
		{"overlapping corner", Rect{X: 3, Y: 3, Width: 4, Height: 4}, true, 4},
		{"contained", Rect{X: 1, Y: 1, Width: 2, Height: 2}, true, 4},
		{"edge adjacent", Rect{X: 5, Y: 0, Width: 3, Height: 5}, false, 0},
		{"disjoint", Rect{X: 10, Y: 10, Width: 2, Height: 2}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.intersects {
				t.Errorf("Intersects = %v, want %v", got, tt.intersects)
			}
			if got := a.IntersectionArea(tt.b); got != tt.area {
				t.Errorf("IntersectionArea = %g, want %g", got, tt.area)
			}
		})
	}
}

func TestOverlap1D(t *testing.T) {
	if got := Overlap1D(0, 5, 3, 8); got != 2 {
		t.Errorf("expected overlap 2, got %g", got)
	}
	if got := Overlap1D(0, 5, 5, 8); got != 0 {
		t.Errorf("touching intervals should not overlap, got %g", got)
	}
	if got := Overlap1D(0, 5, 6, 8); got != 0 {
		t.Errorf("disjoint intervals should not overlap, got %g", got)
	}
}

func TestRectPolygonWinding(t *testing.T) {
	poly := RectPolygon(Rect{X: 1, Y: 2, Width: 4, Height: 3})
	if len(poly) != 4 {
		t.Fatalf("expected 4 points, got %d", len(poly))
	}
	// Counter-clockwise from the bottom-left corner.
	want := Polygon{{1, 2}, {5, 2}, {5, 5}, {1, 5}}
	for i, p := range poly {
		if p != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, p, want[i])
		}
	}
	// Edge 0 runs along the bottom.
	a, b := poly.Edge(0)
	if a.Y != 2 || b.Y != 2 {
		t.Errorf("edge 0 should be the bottom edge, got %+v -> %+v", a, b)
	}
}

func TestPolygonAreaAndPerimeter(t *testing.T) {
	poly := RectPolygon(Rect{X: 0, Y: 0, Width: 5, Height: 4})
	if poly.Area() != 20 {
		t.Errorf("expected area 20, got %g", poly.Area())
	}
	if poly.Perimeter() != 18 {
		t.Errorf("expected perimeter 18, got %g", poly.Perimeter())
	}

	b := poly.Bounds()
	if b.Width != 5 || b.Height != 4 || b.X != 0 || b.Y != 0 {
		t.Errorf("unexpected bounds %+v", b)
	}
}

func TestPolygonEdgeLength(t *testing.T) {
	poly := RectPolygon(Rect{X: 0, Y: 0, Width: 5, Height: 4})
	lengths := []float64{5, 4, 5, 4}
	for i, want := range lengths {
		if got := poly.EdgeLength(i); got != want {
			t.Errorf("edge %d length = %g, want %g", i, got, want)
		}
	}
}

func TestPolygonIsAxisAlignedRect(t *testing.T) {
	tests := []struct {
		name string
		poly Polygon
		want bool
	}{
		{"valid rect", RectPolygon(Rect{X: 0, Y: 0, Width: 5, Height: 4}), true},
		{"triangle", Polygon{{0, 0}, {5, 0}, {5, 4}}, false},
		{"five points", Polygon{{0, 0}, {5, 0}, {5, 4}, {2, 4}, {0, 4}}, false},
		{"diagonal edge", Polygon{{0, 0}, {5, 1}, {5, 4}, {0, 4}}, false},
		{"zero area", Polygon{{0, 0}, {5, 0}, {5, 0}, {0, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.IsAxisAlignedRect(1e-6); got != tt.want {
				t.Errorf("IsAxisAlignedRect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonTranslate(t *testing.T) {
	poly := RectPolygon(Rect{X: 0, Y: 0, Width: 2, Height: 2})
	moved := poly.Translate(3, 4)
	if moved[0].X != 3 || moved[0].Y != 4 {
		t.Errorf("expected first point (3, 4), got %+v", moved[0])
	}
	if poly[0].X != 0 || poly[0].Y != 0 {
		t.Error("translate should not mutate the original")
	}
	if moved.Area() != poly.Area() {
		t.Errorf("translate changed area: %g != %g", moved.Area(), poly.Area())
	}
}
