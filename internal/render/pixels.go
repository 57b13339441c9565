package render

import (
	"image/color"
	"math"
)

// fillPaletteRGBA converts cell labels into RGBA pixels using a palette.
// Labels past the end of the palette wrap around, skipping entry 0 which
// is reserved for empty cells. When the palette is empty the buffer is
// cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	for i, c := range cells {
		idx := int(c)
		if idx >= len(palette) {
			if len(palette) > 1 {
				idx = 1 + (idx-1)%(len(palette)-1)
			} else {
				idx = 0
			}
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Palette returns n+1 colours: background first, then n hues spread
// around the colour wheel by the golden angle so neighbours differ.
func Palette(background color.RGBA, n int) []color.RGBA {
	out := make([]color.RGBA, 0, n+1)
	out = append(out, background)
	for i := 0; i < n; i++ {
		h := math.Mod(float64(i)*137.50776, 360)
		out = append(out, hsv(h, 0.55, 0.95))
	}
	return out
}

func hsv(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}
