package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GraphTheme keeps the chrome around the plot neutral so it never
// competes with series colors, and forces a light background because
// the plot surface is always white.
type GraphTheme struct{}

var _ fyne.Theme = (*GraphTheme)(nil)

func (t *GraphTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x25, G: 0x00, B: 0x9E, A: 0xFF}
	case theme.ColorNameForeground:
		return color.NRGBA{A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

func (t *GraphTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *GraphTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *GraphTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		// The graph draws its own border; widget padding around it
		// just wastes plot area.
		return 0
	default:
		return theme.DefaultTheme().Size(name)
	}
}
