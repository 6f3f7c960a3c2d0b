package game

import (
	"testing"

	"github.com/dermotk/heart-chase/internal/clock"
)

func tick(clk *clock.Clock, n int) {
	for range n {
		clk.Tick()
	}
}

func TestPursuitMovesDiagonallyTowardPlayer(t *testing.T) {
	clk := clock.New()
	p := pursuit{clk: clk}
	enemies := []*Enemy{{Kind: Pumpkin, X: 10, Y: 10, Speed: 1, Active: true}}

	tick(clk, 30)
	if !p.step(enemies, 50, 50, 30, false) {
		t.Fatal("pursuit did not run after the delay elapsed")
	}
	if enemies[0].X != 11 || enemies[0].Y != 11 {
		t.Errorf("enemy at (%d, %d), expected (11, 11)", enemies[0].X, enemies[0].Y)
	}
	if enemies[0].PrevX != 10 || enemies[0].PrevY != 10 {
		t.Errorf("previous position = (%d, %d), expected (10, 10)", enemies[0].PrevX, enemies[0].PrevY)
	}
}

func TestPursuitIsRateGated(t *testing.T) {
	clk := clock.New()
	p := pursuit{clk: clk}
	enemies := []*Enemy{{Kind: Pumpkin, X: 10, Y: 10, Speed: 1, Active: true}}

	tick(clk, 29)
	if p.step(enemies, 50, 50, 30, false) {
		t.Error("pursuit ran before the delay elapsed")
	}
	tick(clk, 1)
	if !p.step(enemies, 50, 50, 30, false) {
		t.Error("pursuit did not run once the delay elapsed")
	}
	// The gate resets; an immediate second call is too early.
	if p.step(enemies, 50, 50, 30, false) {
		t.Error("pursuit ran twice without waiting out the delay")
	}
}

func TestPursuitSkipsInactiveEnemies(t *testing.T) {
	clk := clock.New()
	p := pursuit{clk: clk}
	enemies := []*Enemy{{Kind: Pumpkin, X: 10, Y: 10, Speed: 1, Active: false}}

	tick(clk, 100)
	p.step(enemies, 50, 50, 30, false)
	if enemies[0].X != 10 || enemies[0].Y != 10 {
		t.Error("inactive enemy moved")
	}
}

func TestPursuitStutterHoldsOnOddTicks(t *testing.T) {
	clk := clock.New()
	p := pursuit{clk: clk}
	enemies := []*Enemy{{Kind: Pumpkin, X: 10, Y: 10, Speed: 1, Active: true}}

	tick(clk, 65) // odd millisecond
	p.step(enemies, 50, 50, 65, true)
	if enemies[0].X != 10 || enemies[0].Y != 10 {
		t.Error("stuttering enemy moved on an odd millisecond")
	}

	tick(clk, 65) // 130, even
	p.step(enemies, 50, 50, 65, true)
	if enemies[0].X != 11 || enemies[0].Y != 11 {
		t.Errorf("stuttering enemy at (%d, %d), expected a step on an even millisecond", enemies[0].X, enemies[0].Y)
	}
}

func TestPursuitBossIgnoresStutter(t *testing.T) {
	clk := clock.New()
	p := pursuit{clk: clk}
	enemies := []*Enemy{{Kind: Boss, X: 64, Y: 80, Speed: 2, Active: true}}

	tick(clk, 65) // odd millisecond, pumpkins would hold
	p.step(enemies, 0, 0, 65, true)
	if enemies[0].X != 62 || enemies[0].Y != 78 {
		t.Errorf("boss at (%d, %d), expected (62, 78)", enemies[0].X, enemies[0].Y)
	}
}

func TestPursuitClampsToField(t *testing.T) {
	clk := clock.New()
	p := pursuit{clk: clk}
	enemies := []*Enemy{
		{Kind: Pumpkin, X: 0, Y: 0, Speed: 1, Active: true},
		{Kind: Boss, X: 103, Y: 128, Speed: 2, Active: true},
	}

	tick(clk, 100)
	p.step(enemies, -50, -50, 30, false)
	if enemies[0].X != 0 || enemies[0].Y != 0 {
		t.Error("pumpkin pushed past the origin")
	}

	tick(clk, 100)
	p.step(enemies, 200, 200, 30, false)
	if enemies[1].X != 103 || enemies[1].Y != 128 {
		t.Errorf("boss at (%d, %d), expected clamp at (103, 128)", enemies[1].X, enemies[1].Y)
	}
}

func TestCaught(t *testing.T) {
	enemies := []*Enemy{
		{Kind: Pumpkin, X: 40, Y: 40, Active: true},
		{Kind: Pumpkin, X: 100, Y: 100, Active: false},
	}

	if !caught(enemies, 45, 50) {
		t.Error("player inside an active enemy box not caught")
	}
	if caught(enemies, 105, 105) {
		t.Error("inactive enemy caught the player")
	}
	if caught(enemies, 70, 70) {
		t.Error("player outside every box reported caught")
	}
}

func TestBossBoxIsDoubleSize(t *testing.T) {
	b := Enemy{Kind: Boss, X: 10, Y: 10}
	box := b.Box()
	if box.W != 24 || box.H != 32 {
		t.Errorf("boss box = %dx%d, expected 24x32", box.W, box.H)
	}
	if !box.Contains(30, 40) {
		t.Error("boss box missed a point a pumpkin box would not cover")
	}
}
