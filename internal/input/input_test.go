package input

import (
	"testing"

	"github.com/dermotk/heart-chase/internal/clock"
)

// tick advances a manual clock n times.
func tick(clk *clock.Clock, n int) {
	for range n {
		clk.Tick()
	}
}

func TestPressedWithinHoldWindow(t *testing.T) {
	clk := clock.New()
	b := NewButtons(clk, 100)

	b.Press(Left)
	if !b.Pressed(Left) {
		t.Error("button not pressed immediately after Press")
	}

	tick(clk, 99)
	if !b.Pressed(Left) {
		t.Error("button released before the hold window expired")
	}

	tick(clk, 1)
	if b.Pressed(Left) {
		t.Error("button still pressed after the hold window expired")
	}
}

func TestPressRestartsWindow(t *testing.T) {
	clk := clock.New()
	b := NewButtons(clk, 100)

	b.Press(Select)
	tick(clk, 80)
	b.Press(Select)
	tick(clk, 80)
	if !b.Pressed(Select) {
		t.Error("repeated press did not restart the hold window")
	}
}

func TestButtonsAreIndependent(t *testing.T) {
	clk := clock.New()
	b := NewButtons(clk, 100)

	b.Press(Up)
	if b.Pressed(Down) || b.Pressed(Right) {
		t.Error("pressing one button lit another line")
	}
	if !b.Any() {
		t.Error("Any missed a held button")
	}

	tick(clk, 100)
	if b.Any() {
		t.Error("Any reported a press after every window expired")
	}
}

func TestDefaultHold(t *testing.T) {
	clk := clock.New()
	b := NewButtons(clk, 0)

	b.Press(Right)
	tick(clk, int(DefaultHold)-1)
	if !b.Pressed(Right) {
		t.Error("default hold window shorter than DefaultHold")
	}
	tick(clk, 1)
	if b.Pressed(Right) {
		t.Error("default hold window longer than DefaultHold")
	}
}

func TestSerialPollConsumes(t *testing.T) {
	var s Serial

	if _, ok := s.Poll(); ok {
		t.Error("empty serial reported a byte")
	}

	s.Put('r')
	ch, ok := s.Poll()
	if !ok || ch != 'r' {
		t.Errorf("Poll = (%q, %v), expected ('r', true)", ch, ok)
	}
	if _, ok := s.Poll(); ok {
		t.Error("byte not consumed by Poll")
	}
}

func TestSerialOverwrites(t *testing.T) {
	var s Serial
	s.Put('a')
	s.Put('r')
	if ch, _ := s.Poll(); ch != 'r' {
		t.Errorf("Poll = %q, expected the latest byte", ch)
	}
}
