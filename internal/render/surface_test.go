package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggraph/pkg/colorutil"
	"ggraph/pkg/geometry"
)

func countPixels(s *Surface, col color.RGBA) int {
	w, h := s.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.Image().RGBAAt(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestFillRectClips(t *testing.T) {
	s := NewSurface(10, 10)
	s.FillRect(-5, -5, 10, 10, colorutil.White)
	assert.Equal(t, 25, countPixels(s, colorutil.White))
}

func TestLineHorizontal(t *testing.T) {
	s := NewSurface(20, 5)
	s.Line(2, 2, 17, 2, colorutil.White, 1, false)
	assert.Equal(t, 16, countPixels(s, colorutil.White))
}

func TestLineThickness(t *testing.T) {
	thin := NewSurface(20, 9)
	thin.Line(2, 4, 17, 4, colorutil.White, 1, false)
	thick := NewSurface(20, 9)
	thick.Line(2, 4, 17, 4, colorutil.White, 3, false)
	assert.Greater(t, countPixels(thick, colorutil.White), 2*countPixels(thin, colorutil.White))
}

func TestDashedLineHasGaps(t *testing.T) {
	solid := NewSurface(60, 3)
	solid.Line(0, 1, 59, 1, colorutil.White, 1, false)
	dashed := NewSurface(60, 3)
	dashed.Line(0, 1, 59, 1, colorutil.White, 1, true)

	nSolid := countPixels(solid, colorutil.White)
	nDashed := countPixels(dashed, colorutil.White)
	assert.Less(t, nDashed, nSolid)
	assert.Positive(t, nDashed)
}

func TestLineOffSurfaceIsSafe(t *testing.T) {
	s := NewSurface(10, 10)
	s.Line(-20, -20, 30, 30, colorutil.White, 3, false)
	assert.Positive(t, countPixels(s, colorutil.White))
}

func TestPolyline(t *testing.T) {
	s := NewSurface(30, 30)
	s.Polyline([]geometry.PointInt{{X: 2, Y: 2}, {X: 20, Y: 2}, {X: 20, Y: 20}},
		colorutil.White, 1, false)
	assert.Equal(t, colorutil.White, s.Image().RGBAAt(10, 2))
	assert.Equal(t, colorutil.White, s.Image().RGBAAt(20, 10))

	// A single point draws nothing.
	s2 := NewSurface(10, 10)
	s2.Polyline([]geometry.PointInt{{X: 5, Y: 5}}, colorutil.White, 1, false)
	assert.Zero(t, countPixels(s2, colorutil.White))
}

func TestMarkerFilledVersusRing(t *testing.T) {
	filled := NewSurface(21, 21)
	filled.Marker(10, 10, 6, colorutil.White, true, 2)
	ring := NewSurface(21, 21)
	ring.Marker(10, 10, 6, colorutil.White, false, 2)

	assert.Greater(t, countPixels(filled, colorutil.White), countPixels(ring, colorutil.White))
	// Ring leaves the center empty, filled does not.
	assert.Equal(t, colorutil.White, filled.Image().RGBAAt(10, 10))
	assert.NotEqual(t, colorutil.White, ring.Image().RGBAAt(10, 10))
	// Both reach the rim.
	assert.Equal(t, colorutil.White, ring.Image().RGBAAt(10+6, 10))
}

func TestRectOutlineLeavesInterior(t *testing.T) {
	s := NewSurface(20, 20)
	s.RectOutline(2, 2, 17, 17, colorutil.White, 2)
	assert.Equal(t, colorutil.White, s.Image().RGBAAt(2, 10))
	assert.Equal(t, colorutil.White, s.Image().RGBAAt(3, 10))
	assert.NotEqual(t, colorutil.White, s.Image().RGBAAt(10, 10))
}

func TestDashedRectNormalizesCorners(t *testing.T) {
	a := NewSurface(20, 20)
	a.DashedRect(15, 15, 4, 4, colorutil.Yellow)
	b := NewSurface(20, 20)
	b.DashedRect(4, 4, 15, 15, colorutil.Yellow)
	assert.Equal(t, countPixels(a, colorutil.Yellow), countPixels(b, colorutil.Yellow))
	assert.Positive(t, countPixels(a, colorutil.Yellow))
}

func TestCopyFromAndResize(t *testing.T) {
	src := NewSurface(10, 10)
	src.Fill(colorutil.Grey)
	dst := NewSurface(10, 10)
	dst.CopyFrom(src)
	assert.Equal(t, 100, countPixels(dst, colorutil.Grey))

	dst.Resize(10, 10)
	assert.Equal(t, 100, countPixels(dst, colorutil.Grey), "same size keeps contents")
	dst.Resize(5, 5)
	w, h := dst.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 5, h)
	assert.Zero(t, countPixels(dst, colorutil.Grey))
}

func TestFontSetFits(t *testing.T) {
	fs, err := NewFontSet()
	require.NoError(t, err)

	small := fs.Fits("status text", 40, 10)
	large := fs.Fits("status text", 2000, 200)
	_, hs := Measure(small, "status text")
	wl, hl := Measure(large, "status text")
	assert.Greater(t, hl, hs)
	assert.LessOrEqual(t, wl, 2000)
	assert.LessOrEqual(t, hl, 200)
}

func TestDrawCenteredMarksPixels(t *testing.T) {
	fs, err := NewFontSet()
	require.NoError(t, err)
	s := NewSurface(100, 40)
	DrawCentered(s.Image(), fs.Fits("42", 100, 40), "42", 50, 20, colorutil.White)

	touched := 0
	for _, v := range s.Image().Pix {
		if v != 0 {
			touched++
		}
	}
	assert.Positive(t, touched)
}
