package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"

	"github.com/piwi3910/PlanCut/internal/model"
)

// writeRectDXF writes a DXF with a rectangle built from four LINE entities.
func writeRectDXF(t *testing.T, path string, x, y, w, h float64) {
	t.Helper()
	d := dxf.NewDrawing()
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		_, err := d.Line(a[0], a[1], 0, b[0], b[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, d.SaveAs(path))
}

func TestImportFootprintDXF_ChainsLinesIntoOutline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footprint.dxf")
	writeRectDXF(t, path, 2, 3, 10, 8)

	result := ImportFootprintDXF(path)
	require.Empty(t, result.Errors)
	assert.InDelta(t, 10.0, result.Width, 1e-6)
	assert.InDelta(t, 8.0, result.Height, 1e-6)

	// The outline is normalized to the origin.
	b := result.Outline.Bounds()
	assert.InDelta(t, 0, b.X, 1e-6)
	assert.InDelta(t, 0, b.Y, 1e-6)
	assert.True(t, result.Outline.IsAxisAlignedRect(1e-6))
}

func TestImportFootprintDXF_LargestOutlineWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two_shapes.dxf")
	d := dxf.NewDrawing()
	// Outer 12x9 rectangle and a small interior detail square.
	outer := [][2]float64{{0, 0}, {12, 0}, {12, 9}, {0, 9}}
	for i := range outer {
		a := outer[i]
		b := outer[(i+1)%len(outer)]
		_, err := d.Line(a[0], a[1], 0, b[0], b[1], 0)
		require.NoError(t, err)
	}
	inner := [][2]float64{{2, 2}, {4, 2}, {4, 4}, {2, 4}}
	for i := range inner {
		a := inner[i]
		b := inner[(i+1)%len(inner)]
		_, err := d.Line(a[0], a[1], 0, b[0], b[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, d.SaveAs(path))

	result := ImportFootprintDXF(path)
	require.Empty(t, result.Errors)
	assert.InDelta(t, 12.0, result.Width, 1e-6)
	assert.InDelta(t, 9.0, result.Height, 1e-6)
	assert.NotEmpty(t, result.Warnings, "multiple shapes should be reported")
}

func TestImportFootprintDXF_CircleFootprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.dxf")
	d := dxf.NewDrawing()
	_, err := d.Circle(5, 5, 0, 4)
	require.NoError(t, err)
	require.NoError(t, d.SaveAs(path))

	result := ImportFootprintDXF(path)
	require.Empty(t, result.Errors)
	assert.InDelta(t, 8.0, result.Width, 0.05, "bounding box of the circle")
	assert.InDelta(t, 8.0, result.Height, 0.05)
	assert.NotEmpty(t, result.Warnings, "non-rectangular outline should warn")
}

func TestImportFootprintDXF_DegenerateShapeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.dxf")
	writeRectDXF(t, path, 0, 0, 0.1, 0.1)

	result := ImportFootprintDXF(path)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "too small")
}

func TestImportFootprintDXF_MissingFile(t *testing.T) {
	result := ImportFootprintDXF(filepath.Join(t.TempDir(), "nope.dxf"))
	require.NotEmpty(t, result.Errors)
}

func TestChainSegments_ClosedRingLosesDuplicatePoint(t *testing.T) {
	segs := []segment{
		{start: model.Point2D{X: 0, Y: 0}, end: model.Point2D{X: 2, Y: 0}},
		{start: model.Point2D{X: 2, Y: 0}, end: model.Point2D{X: 2, Y: 2}},
		{start: model.Point2D{X: 2, Y: 2}, end: model.Point2D{X: 0, Y: 2}},
		{start: model.Point2D{X: 0, Y: 2}, end: model.Point2D{X: 0, Y: 0}},
	}
	outlines := chainSegments(segs, 0.01)
	require.Len(t, outlines, 1)
	assert.Len(t, outlines[0], 4, "closing point is not duplicated")
	assert.InDelta(t, 4.0, outlines[0].Area(), 1e-9)
}

func TestChainSegments_SingleSegmentDiscarded(t *testing.T) {
	segs := []segment{
		{start: model.Point2D{X: 0, Y: 0}, end: model.Point2D{X: 1, Y: 0}},
	}
	assert.Empty(t, chainSegments(segs, 0.01), "a lone segment cannot form a ring")
}
