package render

import "image/color"

// fillPaletteRGBA converts palette indices into RGBA pixels in buf. Indices
// past the end of the palette use its last colour. An empty palette clears
// the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// scaleRGBA nearest-neighbour upscales a w×h RGBA buffer by scale.
func scaleRGBA(src []byte, w, h, scale int) []byte {
	if scale <= 1 {
		return src
	}
	sw := w * scale
	dst := make([]byte, 4*sw*h*scale)
	for y := 0; y < h*scale; y++ {
		for x := 0; x < sw; x++ {
			s := ((y/scale)*w + x/scale) * 4
			d := (y*sw + x) * 4
			copy(dst[d:d+4], src[s:s+4])
		}
	}
	return dst
}
