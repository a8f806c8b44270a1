// Package render provides software drawing primitives for the graph:
// an RGBA surface with line, marker and rectangle rasterizers, a text
// facility built on opentype fonts, and a batcher bounding the size of
// primitive runs.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"ggraph/pkg/geometry"
)

// Surface is an RGBA image with drawing primitives. It doubles as the
// off-screen pixmap the plot is rendered into before compositing.
type Surface struct {
	img *image.RGBA
}

// NewSurface returns a surface of the given pixel size.
func NewSurface(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image for compositing and text drawing.
func (s *Surface) Image() *image.RGBA { return s.img }

// Size returns the surface dimensions.
func (s *Surface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image when the size changed,
// discarding the old contents.
func (s *Surface) Resize(w, h int) {
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// CopyFrom overwrites this surface with the contents of another of the
// same size.
func (s *Surface) CopyFrom(src *Surface) {
	draw.Draw(s.img, s.img.Bounds(), src.img, src.img.Bounds().Min, draw.Src)
}

// Fill paints the whole surface one color.
func (s *Surface) Fill(col color.RGBA) {
	b := s.img.Bounds()
	s.FillRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy(), col)
}

// FillRect paints a rectangle given by origin and size.
func (s *Surface) FillRect(x, y, w, h int, col color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// SetPixel sets one pixel, ignoring out of bounds coordinates.
func (s *Surface) SetPixel(x, y int, col color.RGBA) {
	if (image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		s.img.SetRGBA(x, y, col)
	}
}

// Line draws a line between two points using Bresenham's algorithm
// with square end caps of the given thickness. When dashed, pixels
// along the walk alternate in runs proportional to the thickness.
func (s *Surface) Line(x1, y1, x2, y2 int, col color.RGBA, thickness int, dashed bool) {
	if thickness < 1 {
		thickness = 1
	}
	dashRun := 3 * thickness

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for step := 0; ; step++ {
		if !dashed || (step/dashRun)%2 == 0 {
			for t := -thickness / 2; t <= thickness/2; t++ {
				for u := -thickness / 2; u <= thickness/2; u++ {
					s.SetPixel(x1+u, y1+t, col)
				}
			}
		}
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polyline draws line segments connecting consecutive points.
func (s *Surface) Polyline(pts []geometry.PointInt, col color.RGBA, thickness int, dashed bool) {
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, col, thickness, dashed)
	}
}

// Marker draws a circular marker. Filled markers are solid disks;
// otherwise a ring of the given outline width is drawn.
func (s *Surface) Marker(cx, cy int, radius float64, col color.RGBA, filled bool, outlineWidth float64) {
	r2 := radius * radius
	inner := radius - outlineWidth
	if inner < 0 {
		inner = 0
	}
	inner2 := inner * inner

	minX := int(float64(cx) - radius - 1)
	maxX := int(float64(cx) + radius + 1)
	minY := int(float64(cy) - radius - 1)
	maxY := int(float64(cy) + radius + 1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			if filled || d2 >= inner2 {
				s.SetPixel(x, y, col)
			}
		}
	}
}

// RectOutline draws a rectangle outline of the given thickness, edges
// drawn inward from the bounds.
func (s *Surface) RectOutline(x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			s.SetPixel(x, y1+t, col)
			s.SetPixel(x, y2-t, col)
		}
		for y := y1; y <= y2; y++ {
			s.SetPixel(x1+t, y, col)
			s.SetPixel(x2-t, y, col)
		}
	}
}

// DashedRect draws a one pixel dashed rectangle outline, used for the
// rubber band selection.
func (s *Surface) DashedRect(x1, y1, x2, y2 int, col color.RGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for x := x1; x <= x2; x++ {
		if mod4(x+y1) < 2 {
			s.SetPixel(x, y1, col)
		}
		if mod4(x+y2) < 2 {
			s.SetPixel(x, y2, col)
		}
	}
	for y := y1; y <= y2; y++ {
		if mod4(x1+y) < 2 {
			s.SetPixel(x1, y, col)
		}
		if mod4(x2+y) < 2 {
			s.SetPixel(x2, y, col)
		}
	}
}

func mod4(v int) int {
	m := v % 4
	if m < 0 {
		m += 4
	}
	return m
}
