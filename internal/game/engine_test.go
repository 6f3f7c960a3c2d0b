package game

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dermotk/heart-chase/internal/audio"
	"github.com/dermotk/heart-chase/internal/clock"
	"github.com/dermotk/heart-chase/internal/config"
	"github.com/dermotk/heart-chase/internal/display"
	"github.com/dermotk/heart-chase/internal/input"
)

// newTestEngine builds an engine on a manual clock with fast timings.
func newTestEngine() (*Engine, *clock.Clock) {
	clk := clock.New()
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Timings.LevelBannerMS = 2
	cfg.Timings.PickupToneMS = 1
	cfg.Audio.Tune = config.TuneConfig{Notes: []uint32{220}, Durations: []uint32{1}}
	// A huge hold window latches test presses until the engine samples them.
	e := New(clk, display.NewFrame(), input.NewButtons(clk, 1<<30), &input.Serial{},
		audio.Muted{}, cfg, log.New(io.Discard), 1)
	e.initLevel(1)
	return e, clk
}

// ticker drives a manual clock from a goroutine so blocking sleeps resolve
// quickly. Callers must call the returned stop func.
func ticker(clk *clock.Clock) func() {
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case <-done:
				return
			default:
				clk.Tick()
			}
		}
	}()
	return func() {
		close(done)
		<-stopped
	}
}

func TestInitLevelRosters(t *testing.T) {
	e, _ := newTestEngine()

	if len(e.hearts) != 2 || len(e.enemies) != 1 {
		t.Fatalf("level 1 roster: %d hearts, %d enemies; expected 2 and 1", len(e.hearts), len(e.enemies))
	}
	if e.hearts[0].X != 40 || e.hearts[0].Y != 80 {
		t.Errorf("heart 1 at (%d, %d), expected (40, 80)", e.hearts[0].X, e.hearts[0].Y)
	}
	if e.player.X != 50 || e.player.Y != 50 {
		t.Errorf("player at (%d, %d), expected (50, 50)", e.player.X, e.player.Y)
	}

	e.initLevel(2)
	if len(e.hearts) != 4 || len(e.enemies) != 4 {
		t.Fatalf("level 2 roster: %d hearts, %d enemies; expected 4 and 4", len(e.hearts), len(e.enemies))
	}
	if e.enemies[3].Kind != Boss {
		t.Error("level 2 roster missing the boss")
	}
	if requiredHearts(1) != 2 || requiredHearts(2) != 4 {
		t.Errorf("required hearts = %d/%d, expected 2/4", requiredHearts(1), requiredHearts(2))
	}
}

func TestMovePlayerBounds(t *testing.T) {
	e, clk := newTestEngine()

	e.buttons.Press(input.Right)
	e.movePlayer(0)
	if e.player.X != 51 {
		t.Errorf("player X = %d, expected 51 after one right step", e.player.X)
	}

	// At the right edge the press is ignored.
	e.player.X = maxX
	e.buttons.Press(input.Right)
	e.movePlayer(0)
	if e.player.X != maxX {
		t.Errorf("player X = %d, moved past the clamp", e.player.X)
	}

	// Left stops at x=2, up at y=1. Fresh buttons drop the held press.
	e.buttons = input.NewButtons(clk, 1<<30)
	e.player.X, e.player.Y = 2, 1
	e.buttons.Press(input.Left)
	e.buttons.Press(input.Up)
	e.movePlayer(0)
	if e.player.X != 2 || e.player.Y != 1 {
		t.Errorf("player at (%d, %d), expected the edge guards to hold (2, 1)", e.player.X, e.player.Y)
	}
}

func TestSerialCharMovesRight(t *testing.T) {
	e, _ := newTestEngine()
	e.movePlayer('r')
	if e.player.X != 51 {
		t.Errorf("player X = %d, expected 'r' to move right", e.player.X)
	}
}

func TestDriftKeepsHeartsInBoundsAndEatenStill(t *testing.T) {
	e, clk := newTestEngine()
	e.hearts[1].Eaten = true
	ex, ey := e.hearts[1].X, e.hearts[1].Y

	for range 200 {
		tick(clk, 400)
		e.driftHearts()
		h := e.hearts[0]
		if h.X < 0 || h.X > maxX || h.Y < 0 || h.Y > maxY {
			t.Fatalf("heart drifted out of bounds to (%d, %d)", h.X, h.Y)
		}
		if h.DirX < -1 || h.DirX > 1 || h.DirY < -1 || h.DirY > 1 {
			t.Fatalf("drift direction (%d, %d) outside {-1,0,1}", h.DirX, h.DirY)
		}
	}
	if e.hearts[1].X != ex || e.hearts[1].Y != ey {
		t.Error("eaten heart moved")
	}
}

func TestDriftIsRateGated(t *testing.T) {
	e, clk := newTestEngine()
	x, y := e.hearts[0].X, e.hearts[0].Y

	tick(clk, 399)
	e.driftHearts()
	if e.hearts[0].X != x || e.hearts[0].Y != y {
		t.Error("hearts drifted before the interval elapsed")
	}
}

func TestCheckWinNeedsAllHearts(t *testing.T) {
	e, _ := newTestEngine()
	e.setState(Playing)

	e.hearts[0].Eaten = true
	e.checkWin()
	if e.State() != Playing {
		t.Fatal("one heart advanced the level on a two-heart requirement")
	}

	e.hearts[1].Eaten = true
	e.checkWin()
	if e.State() != LevelTransition {
		t.Fatalf("state = %v after collecting all level 1 hearts, expected level transition", e.State())
	}
}

func TestCheckWinIsIdempotent(t *testing.T) {
	e, _ := newTestEngine()
	e.setState(Playing)
	e.hearts[0].Eaten = true
	e.hearts[0].Eaten = true // re-marking an eaten heart changes nothing
	e.checkWin()
	if e.HeartsCollected() != 1 {
		t.Errorf("collected = %d, the count must be derived from flags", e.HeartsCollected())
	}
}

func TestLevelTransitionResetsForLevelTwo(t *testing.T) {
	e, clk := newTestEngine()
	stop := ticker(clk)
	defer stop()

	e.setState(LevelTransition)
	e.runLevelTransition()

	if e.State() != Playing {
		t.Fatalf("state = %v after the transition, expected playing", e.State())
	}
	if e.Level() != 2 {
		t.Errorf("level = %d, expected 2", e.Level())
	}
	if e.HeartsCollected() != 0 {
		t.Error("collected hearts survived the level transition")
	}
	if e.player.X != 50 || e.player.Y != 50 {
		t.Error("player position survived the level transition")
	}
	for _, h := range e.hearts {
		if h.Eaten {
			t.Error("eaten flag survived the level transition")
		}
	}
}

func TestEnemyCollisionEndsTheGame(t *testing.T) {
	e, clk := newTestEngine()
	stop := ticker(clk)
	defer stop()

	var got *Result
	e.OnResult = func(r Result) { got = &r }
	e.setState(Playing)
	e.enemies[0].X, e.enemies[0].Y = e.player.X, e.player.Y

	e.stepPlaying(0)

	if e.State() != GameOver {
		t.Fatalf("state = %v after an enemy collision, expected game over", e.State())
	}
	if got == nil || got.Outcome != OutcomeGameOver {
		t.Errorf("result = %+v, expected a game_over record", got)
	}
	for _, en := range e.enemies {
		if en.Active {
			t.Error("enemy still active after game over")
		}
	}
}

func TestWinOnFinalLevel(t *testing.T) {
	e, clk := newTestEngine()
	stop := ticker(clk)
	defer stop()

	var got *Result
	e.OnResult = func(r Result) { got = &r }
	e.setLevel(2)
	e.initLevel(2)
	e.setState(Playing)
	for _, h := range e.hearts {
		h.Eaten = true
	}

	e.checkWin()

	if e.State() != Win {
		t.Fatalf("state = %v after collecting all final-level hearts, expected win", e.State())
	}
	if got == nil || got.Outcome != OutcomeWin || got.Hearts != 4 {
		t.Errorf("result = %+v, expected a 4-heart win record", got)
	}
}

func TestWinningPickupBeatsOverlappingEnemy(t *testing.T) {
	e, clk := newTestEngine()
	stop := ticker(clk)
	defer stop()

	var got []Result
	e.OnResult = func(r Result) { got = append(got, r) }
	e.setLevel(2)
	e.initLevel(2)
	e.setState(Playing)
	for _, h := range e.hearts[:3] {
		h.Eaten = true
	}
	// The final heart sits one step to the right while an enemy box already
	// covers the player. The pickup must end the session as a win; the
	// overlap check later in the same iteration must not run.
	e.hearts[3].X, e.hearts[3].Y = e.player.X+1, e.player.Y
	e.enemies[0].X, e.enemies[0].Y = e.player.X-5, e.player.Y-5
	e.buttons.Press(input.Right)

	e.stepPlaying(0)

	if e.State() != Win {
		t.Fatalf("state = %v after the winning pickup, expected win", e.State())
	}
	if len(got) != 1 || got[0].Outcome != OutcomeWin {
		t.Fatalf("results = %+v, expected exactly one win record", got)
	}
}

func TestLevelClearingPickupBeatsOverlappingEnemy(t *testing.T) {
	e, clk := newTestEngine()
	stop := ticker(clk)
	defer stop()

	e.setState(Playing)
	e.hearts[0].Eaten = true
	e.hearts[1].X, e.hearts[1].Y = e.player.X+1, e.player.Y
	e.enemies[0].X, e.enemies[0].Y = e.player.X-5, e.player.Y-5
	e.buttons.Press(input.Right)

	e.stepPlaying(0)

	if e.State() != LevelTransition {
		t.Fatalf("state = %v after clearing level 1, expected level transition", e.State())
	}
}

func TestOverMenuSelections(t *testing.T) {
	e, clk := newTestEngine()
	stop := ticker(clk)
	defer stop()

	e.setState(GameOver)
	e.overSel = 1
	e.buttons.Press(input.Right)
	e.stepOverMenu(0)
	if e.State() != Menu {
		t.Fatalf("state = %v, expected main menu from the over panel", e.State())
	}
	if e.Level() != 1 {
		t.Error("returning to the menu did not reset the level")
	}

	e.setState(GameOver)
	e.overSel = 0
	e.stepOverMenu('r')
	if e.State() != Playing {
		t.Fatalf("state = %v, expected play-again to restart", e.State())
	}
	if e.HeartsCollected() != 0 {
		t.Error("restart kept collected hearts")
	}
}

func TestStepCoversEveryState(t *testing.T) {
	// Every flow state must be handled by the dispatcher without input.
	states := []State{Menu, Playing, GameOver, Win}
	for _, s := range states {
		e, clk := newTestEngine()
		stop := ticker(clk)
		e.setState(s)
		e.step()
		stop()
		if s != Playing && e.State() != s {
			t.Errorf("state %v changed to %v with no input", s, e.State())
		}
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	e, clk := newTestEngine()
	stop := ticker(clk)
	defer stop()

	e.menuDrawn = true
	e.buttons.Press(input.Up)
	e.stepMenu(0)
	if e.menuSel != menuOptionCount-1 {
		t.Errorf("menu selection = %d, expected wrap to %d", e.menuSel, menuOptionCount-1)
	}

	for range menuOptionCount {
		e.buttons.Press(input.Down)
		e.stepMenu(0)
	}
	if e.menuSel != menuOptionCount-1 {
		t.Errorf("menu selection = %d after a full down cycle, expected %d", e.menuSel, menuOptionCount-1)
	}
}

func TestStartGameFromMenu(t *testing.T) {
	e, clk := newTestEngine()
	stop := ticker(clk)
	defer stop()

	e.menuDrawn = true
	e.menuSel = 0
	e.stepMenu('r')
	if e.State() != Playing {
		t.Fatalf("state = %v after confirming start, expected playing", e.State())
	}
	if e.Level() != 1 || e.HeartsCollected() != 0 {
		t.Error("new session did not start clean at level 1")
	}
}

func TestStopHaltsTheLoop(t *testing.T) {
	e, clk := newTestEngine()
	clk.Start()
	defer clk.Stop()

	finished := make(chan struct{})
	go func() {
		e.Run()
		close(finished)
	}()

	e.Stop()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
