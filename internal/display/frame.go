// Package display provides the 128x160 RGB565 framebuffer the game draws
// into. The game mutates it from the engine goroutine; the terminal renderer
// snapshots it from the UI goroutine, so all access goes through a mutex.
package display

import "sync"

// Frame dimensions in pixels.
const (
	Width  = 128
	Height = 160
)

// Frame is a mutex-guarded pixel buffer. Draw calls clip silently at the
// edges; out-of-range pixels are dropped, never wrapped.
type Frame struct {
	mu  sync.Mutex
	pix [Width * Height]Color
}

// NewFrame returns a frame cleared to black.
func NewFrame() *Frame {
	return &Frame{}
}

// SetPixel writes a single pixel, ignoring out-of-range coordinates.
func (f *Frame) SetPixel(x, y int, c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set(x, y, c)
}

func (f *Frame) set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	f.pix[y*Width+x] = c
}

// At returns the pixel at (x, y), or black when out of range.
func (f *Frame) At(x, y int) Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return 0
	}
	return f.pix[y*Width+x]
}

// FillRegion paints a solid w*h rectangle anchored at (x, y).
func (f *Frame) FillRegion(x, y, w, h int, c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for dy := range h {
		for dx := range w {
			f.set(x+dx, y+dy, c)
		}
	}
}

// Clear fills the whole frame with one color.
func (f *Frame) Clear(c Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pix {
		f.pix[i] = c
	}
}

// DrawImage blits a w*h sprite stored row-major at (x, y), optionally
// mirrored. Every source pixel is written, including black; sprites erase
// whatever was under them.
func (f *Frame) DrawImage(x, y, w, h int, img []Color, flipH, flipV bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for dy := range h {
		sy := dy
		if flipV {
			sy = h - 1 - dy
		}
		for dx := range w {
			sx := dx
			if flipH {
				sx = w - 1 - dx
			}
			f.set(x+dx, y+dy, img[sy*w+sx])
		}
	}
}

// DrawImage2x blits a sprite scaled 2x with nearest-neighbor sampling, so a
// w*h source covers 2w*2h pixels.
func (f *Frame) DrawImage2x(x, y, w, h int, img []Color, flipH, flipV bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for dy := range 2 * h {
		sy := dy / 2
		if flipV {
			sy = h - 1 - sy
		}
		for dx := range 2 * w {
			sx := dx / 2
			if flipH {
				sx = w - 1 - sx
			}
			f.set(x+dx, y+dy, img[sy*w+sx])
		}
	}
}

// DrawText renders a string in the 5x7 font at (x, y). Background pixels of
// each glyph cell are painted too, so text overwrites what was under it.
func (f *Frame) DrawText(s string, x, y int, fg, bg Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cx := x
	for _, ch := range s {
		f.drawGlyph(ch, cx, y, fg, bg, 1)
		cx += glyphAdvance
	}
}

// DrawText2x renders a string at double size, 12 pixels of advance per glyph.
func (f *Frame) DrawText2x(s string, x, y int, fg, bg Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cx := x
	for _, ch := range s {
		f.drawGlyph(ch, cx, y, fg, bg, 2)
		cx += glyphAdvance * 2
	}
}

func (f *Frame) drawGlyph(ch rune, x, y int, fg, bg Color, scale int) {
	cols := glyphFor(ch)
	for gx := range glyphAdvance {
		var bits byte
		if gx < glyphWidth {
			bits = cols[gx]
		}
		for gy := range glyphHeight {
			c := bg
			if bits>>gy&1 == 1 {
				c = fg
			}
			for sy := range scale {
				for sx := range scale {
					f.set(x+gx*scale+sx, y+gy*scale+sy, c)
				}
			}
		}
	}
}

// Snapshot copies the current pixels for the renderer.
func (f *Frame) Snapshot() []Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Color, len(f.pix))
	copy(out, f.pix[:])
	return out
}
