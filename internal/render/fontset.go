package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontSizes is the ladder of point sizes a FontSet prepares, smallest
// first.
var fontSizes = []float64{8, 10, 12, 14, 17, 20, 24, 29, 34, 40, 48, 58, 70}

// FontSet holds one typeface rendered at a ladder of sizes, so text
// can be drawn at the largest size fitting an available box.
type FontSet struct {
	faces []font.Face
}

// NewFontSet prepares the ladder using the Go regular typeface.
func NewFontSet() (*FontSet, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	fs := &FontSet{}
	for _, size := range fontSizes {
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("build %gpt face: %w", size, err)
		}
		fs.faces = append(fs.faces, face)
	}
	return fs, nil
}

// Measure returns the pixel width and height of text in a face.
func Measure(face font.Face, text string) (w, h int) {
	m := face.Metrics()
	adv := font.MeasureString(face, text)
	return adv.Ceil(), (m.Ascent + m.Descent).Ceil()
}

// Fits returns the largest face that renders text inside a w by h box.
// When even the smallest face overflows, the smallest is returned so
// callers always have something to draw with.
func (fs *FontSet) Fits(text string, w, h int) font.Face {
	best := fs.faces[0]
	for _, face := range fs.faces {
		tw, th := Measure(face, text)
		if tw > w || th > h {
			break
		}
		best = face
	}
	return best
}

// DrawLeft draws text starting at x, vertically centered on cy.
func DrawLeft(dst *image.RGBA, face font.Face, text string, x, cy int, col color.RGBA) {
	m := face.Metrics()
	baseline := cy + (m.Ascent-m.Descent).Ceil()/2
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

// DrawCentered draws text centered on (cx, cy).
func DrawCentered(dst *image.RGBA, face font.Face, text string, cx, cy int, col color.RGBA) {
	w, _ := Measure(face, text)
	m := face.Metrics()
	baseline := cy + (m.Ascent-m.Descent).Ceil()/2
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(cx-w/2, baseline),
	}
	d.DrawString(text)
}
