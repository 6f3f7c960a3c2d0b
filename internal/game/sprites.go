package game

import "github.com/dermotk/heart-chase/internal/display"

// Sprite bitmaps, 12x16 RGB565 words in row-major order. Black pixels are
// part of the sprite; drawing one erases its whole cell.

const (
	spriteW = 12
	spriteH = 16
)

var spritePlayerOpen = []display.Color{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x4000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0xF043, 0xB725, 0x0F43, 0xCD4B, 0x123C, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0xF13C, 0x5A16, 0x5F07, 0x5F07, 0x5F07, 0x5F07, 0x2F43, 0xFD0E, 0xA000, 0x0000,
	0x0000, 0x0000, 0xF625, 0x5F07, 0x5F07, 0xFFFF, 0x5F07, 0x5F07, 0x5C0E, 0x791E, 0x923C, 0x0000,
	0x4000, 0xF61D, 0x5F07, 0xF043, 0x5F07, 0x5F07, 0x9FA7, 0x9FA7, 0x9FA7, 0x9FA7, 0x9FA7, 0x0000,
	0x0000, 0x9434, 0x1334, 0xD52D, 0x5F07, 0x9FA7, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0xE000, 0xB434, 0x362D, 0xD434, 0x913C, 0x5F07, 0x9FA7, 0x9FA7, 0x9FA7, 0x9FA7, 0x9FA7, 0x0000,
	0x0000, 0x0000, 0x8E4B, 0x9725, 0x9725, 0x5F07, 0x5F07, 0x5F07, 0x5F07, 0x3F07, 0x7B16, 0x0000,
	0x0000, 0x0000, 0xD23C, 0xAF43, 0x5A16, 0x9434, 0x552D, 0x9A16, 0xF81D, 0x9A16, 0x4000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0xD334, 0x342D, 0xD13C, 0xEF43, 0xD043, 0x6000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
}

var spritePlayerClosed = []display.Color{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x4000, 0x8000, 0x8000, 0x8000, 0x6000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0xD043, 0x542D, 0x9725, 0x791E, 0xF52D, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x5F07, 0x5A16, 0x5F07, 0x5F07, 0x1E07, 0x9F07, 0x7B16, 0xFA1E, 0x7825, 0x0000,
	0x0000, 0x0000, 0xF625, 0x5F07, 0x5F07, 0xFFFF, 0x5F07, 0x5F07, 0x5F07, 0x5FA7, 0x7EA7, 0x0000,
	0x0108, 0xD52D, 0x5F07, 0xF043, 0x5F07, 0x5F07, 0x5F07, 0x9FA7, 0x9FA7, 0x0000, 0x0000, 0x0000,
	0x0000, 0xD42C, 0x1334, 0xD52D, 0x5F07, 0x9FA7, 0x9FA7, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0xE000, 0xB434, 0x362D, 0xD434, 0x913C, 0x5F07, 0x5F07, 0x9FA7, 0x9FA7, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x8E4B, 0x9725, 0x9725, 0x9A16, 0x123C, 0x5F07, 0x1F07, 0x7FA7, 0x9FA7, 0x0000,
	0x0000, 0x0000, 0x5F07, 0xAF43, 0x5A16, 0x9434, 0x552D, 0x7C0E, 0xB81D, 0xB91E, 0xD81D, 0xC000,
	0x0000, 0x0000, 0x0000, 0x0000, 0xD334, 0x342D, 0xD13C, 0xEF43, 0xD043, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
}

var spritePlayerUp = []display.Color{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x6000, 0x6000, 0x2000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x1905, 0x780D, 0x780D, 0xB90D, 0x2000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x5905, 0xD615, 0x5615, 0x7615, 0x770D, 0xF905, 0x0000, 0x0000, 0x0000,
	0x0000, 0x6000, 0x580D, 0x351C, 0xD31C, 0xF31C, 0x731C, 0xB41C, 0x9514, 0xF80D, 0x2000, 0x0000,
	0x4000, 0xF80D, 0x3615, 0x1224, 0x502B, 0x302B, 0x5124, 0x9023, 0x941C, 0x5514, 0x770D, 0x0000,
	0x6000, 0x570D, 0xD514, 0x3124, 0x102B, 0xCE2B, 0x0F2B, 0xB023, 0xD41C, 0x5514, 0x7615, 0xA000,
	0x4000, 0x570D, 0x7514, 0x3124, 0x8F2B, 0x4F2B, 0x4F2B, 0xF123, 0x331C, 0x3615, 0x7615, 0xA000,
	0x0000, 0x0000, 0x7514, 0x1224, 0x1124, 0xD224, 0x1224, 0x5224, 0x5514, 0x7615, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x5615, 0x741C, 0x141C, 0xD514, 0x1715, 0x380D, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0xD80D, 0xF615, 0x370D, 0x7905, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
}

var spriteHeart = []display.Color{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x5C10, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x5C10, 0x0000, 0x0000,
	0x0000, 0x9C10, 0x5A29, 0x1B21, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000,
	0x0000, 0x5C10, 0x1B21, 0x3A3A, 0xFA31, 0xBC10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000,
	0x0000, 0x5C10, 0x9C18, 0x7B29, 0x3A32, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000,
	0x0000, 0x5C10, 0x5C10, 0x5C10, 0x7C18, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000,
	0x0000, 0x0000, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
}

var spriteHeartAlt = []display.Color{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x5C10, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x5C10, 0x0000, 0x0000,
	0x0000, 0x9C10, 0x5A29, 0x1B21, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000,
	0x0000, 0x5C10, 0x1B21, 0x3A3A, 0xFA31, 0xBC10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000,
	0x0000, 0x5C10, 0x9C18, 0x7B29, 0x3A32, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000,
	0x0000, 0x5C10, 0x5C10, 0x5C10, 0x7C18, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000,
	0x0000, 0x0000, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5C10, 0x5C10, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
}

var spritePumpkin = []display.Color{
	0x0000, 0x0000, 0x0000, 0x0000, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0x0000, 0x0000,
	0x0000, 0xFD20, 0xFD20, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0x07E0, 0xFD20, 0xFD20, 0x0000,
	0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFFFF, 0xFD20, 0xFFFF, 0xFD20, 0xFD20, 0xFFFF, 0xFD20, 0xFFFF, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFFFF, 0xFD20, 0xFFFF, 0xFD20, 0xFD20, 0xFFFF, 0xFD20, 0xFFFF, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFD20, 0xFD20, 0xFD20, 0x0000, 0x0000, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFD20, 0xFD20, 0x0000, 0xFFFF, 0xFFFF, 0x0000, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFD20, 0x0000, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0x0000, 0xFD20, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFD20, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFD20, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFD20, 0xFFFF, 0x0000, 0xFFFF, 0xFFFF, 0x0000, 0xFFFF, 0xFD20, 0xFD20, 0xFD20, 0xFD20,
	0xFD20, 0xFD20, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0xFD20, 0xFD20, 0xFD20, 0xFD20,
	0x0000, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0x0000,
	0x0000, 0x0000, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0xFD20, 0x0000, 0x0000, 0x0000,
}
