package sim

// PixelBytes converts ARGB colors into premultiplied RGBA bytes, reusing dst
// when it is large enough.
func PixelBytes(dst []byte, src []Color) []byte {
	n := len(src) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range src {
		base := i * 4
		a := uint32(c.Alpha())
		r, g, b := c.RGB()
		dst[base] = premultiply(r, a)
		dst[base+1] = premultiply(g, a)
		dst[base+2] = premultiply(b, a)
		dst[base+3] = byte(a)
	}
	return dst
}

func premultiply(v uint8, a uint32) byte {
	return byte((uint32(v)*a + 127) / 255)
}
