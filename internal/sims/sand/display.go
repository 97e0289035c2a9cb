package sand

import (
	"fmt"
	"image/color"
)

// Background is drawn for cells without a display color.
var Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}

var palette = buildPalette()

// Color returns the display color of m. Empty and unknown materials have no
// color and report ErrUnsupportedMaterial; drivers skip such cells.
func Color(m Material) (color.RGBA, error) {
	switch m.Kind() {
	case KindStone:
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}, nil
	case KindSand:
		return color.RGBA{R: 253, G: 249, B: 0, A: 255}, nil
	case KindWater:
		return shadeFlow(color.RGBA{R: 0, G: 121, B: 241, A: 255}, m.FlowBias()), nil
	case KindLava:
		return shadeFlow(color.RGBA{R: 230, G: 41, B: 55, A: 255}, m.FlowBias()), nil
	default:
		return Background, fmt.Errorf("%w: %s has no color", ErrUnsupportedMaterial, m)
	}
}

// Palette maps every display value returned by Cells to a color.
func (w *World) Palette() []color.RGBA {
	return palette
}

func buildPalette() []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		c, err := Color(Material(i))
		if err != nil {
			c = Background
		}
		p[i] = c
	}
	return p
}

// shadeFlow brightens moving liquid slightly so flow direction is visible.
func shadeFlow(c color.RGBA, b FlowBias) color.RGBA {
	if b == FlowNone {
		return c
	}
	lift := func(v uint8) uint8 {
		if v > 255-24 {
			return 255
		}
		return v + 24
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}
