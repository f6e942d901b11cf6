package vector

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color that blends in CIE L*a*b* space, which keeps the midpoints
// of a fade perceptually even. It is usable wherever an image/color.Color is
// expected.
type Color struct {
	colorful.Color
}

// ParseHex reads "#rrggbb" or "#rgb".
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{c}, nil
}

// RGB builds a color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{colorful.Color{R: r, G: g, B: b}}
}

// Blend implements tween.Blender. The endpoints are returned unconverted so
// that progress 0 and 1 give back the exact input colors.
func (c Color) Blend(to Color, progress float64) Color {
	switch progress {
	case 0:
		return c
	case 1:
		return to
	}
	return Color{c.BlendLab(to.Color, progress)}
}

// Hex formats the color, clamped into gamut, as "#rrggbb".
func (c Color) Hex() string {
	return c.Clamped().Hex()
}
