package game

import "github.com/dermotk/heart-chase/internal/display"

// Palette for the maze and the menu screens.
var (
	colorWall       = display.RGBToWord(0, 0, 255)
	colorPath       = display.RGBToWord(0, 0, 20)
	colorTitle      = display.RGBToWord(0xFF, 0x1A, 0x1A)
	colorSelected   = display.RGBToWord(0xFF, 0xFF, 0)
	colorUnselected = display.RGBToWord(0, 0xFF, 0)
	colorBorder     = display.RGBToWord(0, 0, 0xFF)
	colorCaption    = display.RGBToWord(0xFF, 0xFF, 0)
	colorWinText    = display.RGBToWord(0, 0xFF, 0)
	colorLoseText   = display.RGBToWord(0xFF, 0, 0)
	colorWhite      = display.RGBToWord(0xFF, 0xFF, 0xFF)
	colorPanel      = display.RGBToWord(0, 0, 32)

	colorWinGold = display.RGBToWord(0xFF, 0xD7, 0x00)
	colorWinPink = display.RGBToWord(0xFF, 0x69, 0xB4)
	colorWinBlue = display.RGBToWord(0x00, 0xBF, 0xFF)
)
