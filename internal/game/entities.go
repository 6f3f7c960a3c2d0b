package game

import "github.com/dermotk/heart-chase/internal/core"

// Playfield movement bounds in pixels. Sprites anchor at their top-left, so
// the clamp keeps a 12x16 sprite fully on the 128x160 surface.
const (
	maxX = 115
	maxY = 144
)

// Player is the controllable character. OldX/OldY hold the last drawn
// position so movement can erase before redrawing.
type Player struct {
	X, Y       int
	OldX, OldY int
	FlipH      bool // facing left
	FlipV      bool // facing up
	Toggle     bool // mouth animation frame
}

// Heart is a drifting collectible. HomeX/HomeY are its level spawn point;
// Alt selects the alternate bitmap; Caption is printed on pickup.
type Heart struct {
	X, Y         int
	HomeX, HomeY int
	DirX, DirY   int
	Eaten        bool
	Alt          bool
	Caption      string
	CaptionY     int
}

// Reset returns the heart to its spawn point, uneaten.
func (h *Heart) Reset() {
	h.X, h.Y = h.HomeX, h.HomeY
	h.DirX, h.DirY = 0, 0
	h.Eaten = false
}

// Sprite returns the heart's bitmap.
func (h *Heart) Sprite() []uint16 {
	if h.Alt {
		return spriteHeartAlt
	}
	return spriteHeart
}

// EnemyKind discriminates the pursuit variants.
type EnemyKind int

const (
	Pumpkin EnemyKind = iota
	Boss
)

// Enemy pursues the player. A Boss shares the same motion contract but is
// drawn at double scale with its own fixed speed. PrevX/PrevY hold the last
// drawn position for erase-then-redraw.
type Enemy struct {
	Kind         EnemyKind
	X, Y         int
	PrevX, PrevY int
	Speed        int
	Active       bool
}

// Box returns the enemy's collision rectangle.
func (e *Enemy) Box() core.Rect {
	w, h := spriteW, spriteH
	if e.Kind == Boss {
		w, h = spriteW*2, spriteH*2
	}
	return core.Rect{X: e.X, Y: e.Y, W: w, H: h}
}

// maxPos returns the clamp limit for the enemy's top-left corner.
func (e *Enemy) maxPos() (int, int) {
	if e.Kind == Boss {
		return maxX - spriteW, maxY - spriteH
	}
	return maxX, maxY
}
