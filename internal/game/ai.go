package game

import (
	"github.com/dermotk/heart-chase/internal/clock"
	"github.com/dermotk/heart-chase/internal/core"
)

// pursuit is the rate-gated greedy chase. Each update moves every active
// enemy one speed-step toward the player on each axis independently, then
// clamps to the playfield.
type pursuit struct {
	clk      *clock.Clock
	lastMove uint32
}

// step advances all enemies if at least delayMS has elapsed since the last
// update. It reports whether the enemies moved this call; callers redraw only
// on movement.
func (p *pursuit) step(enemies []*Enemy, px, py int, delayMS uint32, stutter bool) bool {
	if p.clk.Since(p.lastMove) < delayMS {
		return false
	}
	p.lastMove = p.clk.Now()

	for _, e := range enemies {
		if !e.Active {
			continue
		}
		e.PrevX, e.PrevY = e.X, e.Y

		speed := e.Speed
		if stutter && e.Kind == Pumpkin {
			// Half-rate creep: move only on even milliseconds.
			if p.clk.Now()%2 == 0 {
				speed = 1
			} else {
				speed = 0
			}
		}

		if e.X < px {
			e.X += speed
		}
		if e.X > px {
			e.X -= speed
		}
		if e.Y < py {
			e.Y += speed
		}
		if e.Y > py {
			e.Y -= speed
		}

		mx, my := e.maxPos()
		e.X = core.Clamp(e.X, 0, mx)
		e.Y = core.Clamp(e.Y, 0, my)
	}
	return true
}

// caught reports whether the player's anchor point is inside any active
// enemy's box.
func caught(enemies []*Enemy, px, py int) bool {
	for _, e := range enemies {
		if e.Active && e.Box().Contains(px, py) {
			return true
		}
	}
	return false
}
