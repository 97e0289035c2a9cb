package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette, or every value when the palette is
// empty, are drawn with fallback.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA, fallback color.RGBA) {
	for i, c := range cells {
		col := fallback
		if idx := int(c); idx < len(palette) {
			col = palette[idx]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// grayscalePalette builds a palette for sims that do not provide one: zero is
// black and any other value is white.
func grayscalePalette() []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		if i == 0 {
			p[i] = color.RGBA{A: 255}
			continue
		}
		p[i] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return p
}
