package display

import "testing"

func TestRGBToWordPacksChannels(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint8
		expected Color
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 255, 255, 255, 0xFFFF},
		{"red", 255, 0, 0, 0xF800},
		{"green", 0, 255, 0, 0x07E0},
		{"blue", 0, 0, 255, 0x001F},
		{"yellow", 255, 255, 0, 0xFFE0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RGBToWord(tc.r, tc.g, tc.b); got != tc.expected {
				t.Errorf("RGBToWord(%d, %d, %d) = %04X, expected %04X", tc.r, tc.g, tc.b, got, tc.expected)
			}
		})
	}
}

func TestWordToRGBRoundTripsExtremes(t *testing.T) {
	if r, g, b := WordToRGB(0xFFFF); r != 255 || g != 255 || b != 255 {
		t.Errorf("white unpacked to (%d, %d, %d)", r, g, b)
	}
	if r, g, b := WordToRGB(0); r != 0 || g != 0 || b != 0 {
		t.Errorf("black unpacked to (%d, %d, %d)", r, g, b)
	}
}

func TestFillRegionClipsAtEdges(t *testing.T) {
	f := NewFrame()
	red := RGBToWord(255, 0, 0)
	f.FillRegion(Width-2, Height-2, 10, 10, red)

	if f.At(Width-1, Height-1) != red {
		t.Error("in-range corner pixel not painted")
	}
	// Out-of-range reads come back black and must not have wrapped.
	if f.At(0, 0) != 0 || f.At(0, Height-1) != 0 {
		t.Error("fill wrapped around the frame edge")
	}
}

func TestSetPixelIgnoresOutOfRange(t *testing.T) {
	f := NewFrame()
	f.SetPixel(-1, 0, 0xFFFF)
	f.SetPixel(Width, 0, 0xFFFF)
	f.SetPixel(0, Height, 0xFFFF)
	for _, p := range f.Snapshot() {
		if p != 0 {
			t.Fatal("out-of-range SetPixel mutated the frame")
		}
	}
}

func TestDrawImageWritesEveryPixel(t *testing.T) {
	f := NewFrame()
	f.Clear(0xFFFF)

	// A 2x2 sprite with one black pixel; black must overwrite too.
	img := []Color{0x0000, 0xF800, 0x07E0, 0x001F}
	f.DrawImage(10, 10, 2, 2, img, false, false)

	if f.At(10, 10) != 0x0000 {
		t.Error("black sprite pixel did not overwrite the background")
	}
	if f.At(11, 10) != 0xF800 || f.At(10, 11) != 0x07E0 || f.At(11, 11) != 0x001F {
		t.Error("sprite pixels landed in the wrong positions")
	}
}

func TestDrawImageFlips(t *testing.T) {
	img := []Color{1, 2, 3, 4} // row-major 2x2

	f := NewFrame()
	f.DrawImage(0, 0, 2, 2, img, true, false)
	if f.At(0, 0) != 2 || f.At(1, 0) != 1 || f.At(0, 1) != 4 || f.At(1, 1) != 3 {
		t.Error("horizontal flip mirrored incorrectly")
	}

	f = NewFrame()
	f.DrawImage(0, 0, 2, 2, img, false, true)
	if f.At(0, 0) != 3 || f.At(1, 0) != 4 || f.At(0, 1) != 1 || f.At(1, 1) != 2 {
		t.Error("vertical flip mirrored incorrectly")
	}
}

func TestDrawImage2xDoublesEachPixel(t *testing.T) {
	f := NewFrame()
	img := []Color{1, 2, 3, 4}
	f.DrawImage2x(0, 0, 2, 2, img, false, false)

	for _, tc := range []struct {
		x, y     int
		expected Color
	}{
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
		{2, 0, 2}, {3, 1, 2},
		{0, 2, 3}, {1, 3, 3},
		{3, 3, 4},
	} {
		if got := f.At(tc.x, tc.y); got != tc.expected {
			t.Errorf("At(%d, %d) = %d, expected %d", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestDrawTextPaintsBackground(t *testing.T) {
	f := NewFrame()
	f.Clear(0xF800)
	fg := RGBToWord(255, 255, 255)
	f.DrawText("I", 0, 0, fg, 0x0000)

	// 'I' has a solid middle column and empty outer columns; the empty
	// columns must be painted with the background, not left red.
	if f.At(0, 0) != 0x0000 {
		t.Error("glyph background pixel kept the old color")
	}
	if f.At(2, 3) != fg {
		t.Error("glyph stroke pixel not painted in the foreground color")
	}
	// The spacing column belongs to the glyph cell too.
	if f.At(5, 3) != 0x0000 {
		t.Error("glyph spacing column kept the old color")
	}
}

func TestDrawTextAdvance(t *testing.T) {
	f := NewFrame()
	fg := Color(0xFFFF)
	f.DrawText("II", 0, 0, fg, 0)
	if f.At(2, 3) != fg || f.At(8, 3) != fg {
		t.Error("second glyph did not land 6 pixels after the first")
	}

	f = NewFrame()
	f.DrawText2x("II", 0, 0, fg, 0)
	if f.At(4, 6) != fg || f.At(16, 6) != fg {
		t.Error("double-size glyphs did not land on a 12 pixel advance")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	f := NewFrame()
	snap := f.Snapshot()
	f.SetPixel(0, 0, 0xFFFF)
	if snap[0] != 0 {
		t.Error("snapshot aliased the live buffer")
	}
	if len(snap) != Width*Height {
		t.Errorf("snapshot length = %d, expected %d", len(snap), Width*Height)
	}
}
