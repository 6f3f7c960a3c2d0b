package display

// Color is a packed RGB565 word, the native pixel format of the frame.
type Color = uint16

// RGBToWord packs 8-bit RGB components into an RGB565 word.
func RGBToWord(r, g, b uint8) Color {
	return (uint16(r>>3) << 11) | (uint16(g>>2) << 5) | uint16(b>>3)
}

// WordToRGB unpacks an RGB565 word into 8-bit components, replicating the
// high bits into the low bits so full white unpacks as 0xFF.
func WordToRGB(c Color) (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1F)
	g6 := uint8(c >> 5 & 0x3F)
	b5 := uint8(c & 0x1F)
	r = r5<<3 | r5>>2
	g = g6<<2 | g6>>4
	b = b5<<3 | b5>>2
	return r, g, b
}
