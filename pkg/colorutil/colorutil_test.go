package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("rgb:e5/00/00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xe5, A: 255}, c)

	c, err = Parse("00b700")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 0xb7, A: 255}, c)

	_, err = Parse("nonsense")
	assert.Error(t, err)
}

func TestPaletteRepeats(t *testing.T) {
	base := Palette(0)
	require.NotEmpty(t, base)

	big := Palette(len(base) + 10)
	require.GreaterOrEqual(t, len(big), len(base)+10)
	assert.Equal(t, base[0], big[len(base)])
	assert.Equal(t, base[9], big[len(base)+9])
}

func TestDistance2(t *testing.T) {
	assert.Zero(t, Distance2(Black, Black))
	assert.Positive(t, Distance2(Black, White))
	// Symmetric
	a := color.RGBA{R: 10, G: 200, B: 30, A: 255}
	b := color.RGBA{R: 200, G: 10, B: 130, A: 255}
	assert.Equal(t, Distance2(a, b), Distance2(b, a))
}
