// Package colorutil provides shared color utilities for the graph viewer.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Common overlay colors used throughout the application.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey   = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// paletteHex holds the series palette, ordered so that consecutive
// entries stay visually distinct even for many series.
var paletteHex = []string{
	"e50000", "25009e", "00b700", "e5be00", "065693", "b7dd00",
	"e58300", "950095", "fc7cfc", "001800", "00fc84", "fcfca0",
	"90a08c", "00a8fc", "7454fc", "fc08fc", "784c30", "fc4078",
	"80fc68", "002cfc", "fc9c78", "20a868", "4cfc04", "d0ccfc",
	"709c04", "006430", "00fce8", "700000", "6400f8", "70a8f4",
	"a450a0", "50d4ac", "2c2450", "fcfc34", "3090b8", "d04024",
	"c840f4", "c4d05c", "ec009c", "00f034", "acf4b8", "5438b4",
	"bc7854", "547070", "a80840", "b080dc", "58cc3c", "246cf8",
	"b400e4", "384800", "00c4bc", "ccbcac", "e86cac", "38d4fc",
	"fc0c4c", "742c70", "a06c00", "288400", "98a840", "7070bc",
	"fc6c44", "fc30c4", "c02878", "002cbc", "640048", "2000e0",
	"9c2c00", "8cfc24", "902cd4", "fcacd8", "e8fce8", "3cfc58",
	"4c903c", "90c4c4", "78d000", "000038", "009834", "d8a43c",
	"fcd078", "002480", "b0a000", "40fcd0", "4430f0", "74cc78",
	"007868", "c8fc7c", "fc5400", "6004b8", "542420", "3c5444",
	"0068c8", "00d464", "c89090", "8c5c68", "b0f8f8", "c424b8",
	"74fca4", "646c08", "c4fc3c", "3c407c", "54a890", "40bc08",
	"00485c", "18c434", "847c38", "14e400", "00a098", "aca8fc",
	"fc4cfc", "00342c", "ac0004", "fc2814", "fcc838", "34000c",
	"580480", "90d848", "8cd0fc", "fcd8c8", "cc5474", "5c7cf0",
	"3860b0", "3cf890", "3cb0dc", "a43848", "e0fc00", "20c890",
	"8898c4", "10f0b4", "180068", "d00068", "a8d88c", "005800",
	"6ca460", "9c58d8", "6c5494", "00d0ec", "64dcdc", "287c8c",
	"987898", "1c48dc", "0090d4", "8828a0", "dc90c4", "40d468",
	"d41830", "d864e0", "dc9cfc", "ac5c30", "dc44a4", "6c4000",
	"b8a868", "e87874", "bcc024", "fc4440", "34e828", "3094fc",
	"e008d0", "908468", "842030", "5054d8", "d4e4a4", "9014fc",
	"d06004", "341cc4", "c08020", "fca018", "8c88fc", "fcb8a4",
	"30fcfc", "dce024", "f4f468", "688494", "3c7024", "64b4c0",
	"60f838", "2cd8d0", "cc2400", "c000a8", "d018fc", "ec1c78",
	"2c7850", "8c0c68", "34003c", "9008c4", "fcc8fc", "bcd4d0",
	"b4a4c8", "bc6cb4", "84f8d0", "78b824", "302498", "0004bc",
	"2ca020", "58344c", "fce000", "34b4b0", "9c40fc", "dcb87c",
	"302400", "d45c44", "286070", "6420d4", "fc9048", "d83854",
	"9cfc8c", "b464fc", "fc54c8", "784cc0", "7430fc", "9c3c78",
	"5894d0", "0cf85c", "0054fc", "0084fc", "007ca4", "a8ec64",
	"80d8a0", "1c1824", "68644c", "fc8ca4", "30382c", "449068",
	"3cb044", "bc44c8", "2c74d0", "a0c000", "00940c", "2440b0",
	"0008fc", "001854", "f02cf4", "3c10fc", "ac4c08", "b0e02c",
	"948c14", "a4fc00", "94bc64", "d4b4dc", "644c6c", "60ec7c",
	"8c0020", "78f400", "5c2098", "3c50fc", "4c206c", "bc7084",
	"d89464", "54d814", "0c3804", "00b450", "505020", "b02424",
	"00b87c", "fc6088", "a4b8a0", "74fcfc",
}

// Parse converts a hex color of the form "e50000" or "rgb:e5/00/00"
// into an opaque RGBA color.
func Parse(name string) (color.RGBA, error) {
	name = strings.TrimPrefix(name, "rgb:")
	name = strings.ReplaceAll(name, "/", "")
	if len(name) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color %q", name)
	}
	var c [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(name[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q: %w", name, err)
		}
		c[i] = uint8(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
}

// Palette returns the series palette with at least n entries, repeating
// the base palette when more series than base colors are requested.
func Palette(n int) []color.RGBA {
	base := make([]color.RGBA, 0, len(paletteHex))
	for _, h := range paletteHex {
		c, err := Parse(h)
		if err != nil {
			panic(err) // table is static
		}
		base = append(base, c)
	}
	out := base
	for len(out) < n {
		out = append(out, base...)
	}
	return out
}

// Distance2 returns a perceptual squared distance between two colors
// (see www.compuphase.com/cmetric.htm).
func Distance2(a, b color.RGBA) int64 {
	ar := (int64(a.R) + int64(b.R)) / 2
	rd := int64(a.R) - int64(b.R)
	gd := int64(a.G) - int64(b.G)
	bd := int64(a.B) - int64(b.B)
	return (((512+ar)*rd*rd)>>8 + 4*gd*gd + ((767-ar)*bd*bd)>>8)
}
