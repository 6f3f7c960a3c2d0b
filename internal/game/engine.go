// Package game implements the game-flow state machine and the cooperative
// loop that drives it. The engine runs in its own goroutine against the
// millisecond clock; the tune sequencer runs in the tick domain; the platform
// layer feeds buttons and renders the framebuffer.
package game

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dermotk/heart-chase/internal/audio"
	"github.com/dermotk/heart-chase/internal/clock"
	"github.com/dermotk/heart-chase/internal/config"
	"github.com/dermotk/heart-chase/internal/core"
	"github.com/dermotk/heart-chase/internal/display"
	"github.com/dermotk/heart-chase/internal/input"
	"github.com/dermotk/heart-chase/internal/maze"
)

// State is the top-level game-flow state.
type State int

const (
	Menu State = iota
	Playing
	LevelTransition
	GameOver
	Win
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case LevelTransition:
		return "level-transition"
	case GameOver:
		return "game-over"
	case Win:
		return "win"
	}
	return "unknown"
}

const menuOptionCount = 3

// Result summarizes a finished session for the scoreboard.
type Result struct {
	Outcome  string // "win" or "game_over"
	Level    int
	Hearts   int
	Duration uint32 // clock milliseconds from start to finish
}

const (
	OutcomeWin      = "win"
	OutcomeGameOver = "game_over"
)

// Engine owns all gameplay state. Every field below mu is touched only from
// the engine goroutine; mu covers the few values the platform reads live.
type Engine struct {
	clk     *clock.Clock
	frame   *display.Frame
	buttons *input.Buttons
	serial  *input.Serial
	fx      *audio.Effects
	seq     *audio.Sequencer
	cfg     config.Config
	logger  *log.Logger
	rng     *rand.Rand

	// OnResult, when set, receives the outcome of each finished session.
	OnResult func(Result)

	done     chan struct{}
	stopOnce sync.Once

	mu        sync.Mutex
	state     State
	level     int
	collected int

	m          *maze.Maze
	player     Player
	hearts     []*Heart
	enemies    []*Enemy
	chase      pursuit
	heartTimer uint32
	startedAt  uint32
	menuSel    int
	overSel    int
	menuDrawn  bool
	menuFrame  int
}

// New wires an engine against its collaborators. The sequencer is registered
// as a tick hook, so New must run before clk.Start.
func New(clk *clock.Clock, frame *display.Frame, buttons *input.Buttons, serial *input.Serial, sink audio.Sink, cfg config.Config, logger *log.Logger, seed int64) *Engine {
	if !cfg.Audio.Enabled {
		sink = audio.Muted{}
	}
	if seed == 0 {
		seed = int64(clk.Now()) + 1
	}
	e := &Engine{
		clk:     clk,
		frame:   frame,
		buttons: buttons,
		serial:  serial,
		fx:      audio.NewEffects(clk, sink),
		seq:     audio.NewSequencer(sink),
		cfg:     cfg,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
		done:    make(chan struct{}),
		state:   Menu,
		level:   1,
		chase:   pursuit{clk: clk},
	}
	clk.Notify(e.seq.Step)
	return e
}

// Run executes the boot sequence and then the cooperative loop until Stop.
// It blocks; callers run it in a goroutine.
func (e *Engine) Run() {
	e.initLevel(1)
	e.drawHearts()

	tune := e.cfg.Audio.Tune
	e.fx.PlayTune(tune.Notes, tune.Durations)
	e.seq.Start(audio.Tune{Notes: tune.Notes, Durations: tune.Durations, Repeat: true})

	e.drawBackground()
	e.logger.Info("game started")

	for !e.stopped() {
		e.step()
		e.clk.Sleep(e.cfg.Timings.LoopYield)
	}
	e.seq.Stop()
}

// Stop ends the loop at the next iteration boundary. Blocking waits inside an
// iteration run to completion first.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.done) })
}

func (e *Engine) stopped() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// State returns the current flow state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Level returns the current 1-based level.
func (e *Engine) Level() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.level
}

// HeartsCollected returns how many hearts the player holds this level.
func (e *Engine) HeartsCollected() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.collected
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

func (e *Engine) setLevel(l int) {
	e.mu.Lock()
	e.level = l
	e.mu.Unlock()
}

func (e *Engine) setCollected(n int) {
	e.mu.Lock()
	e.collected = n
	e.mu.Unlock()
}

// step runs one loop iteration: poll input once, advance the active state.
func (e *Engine) step() {
	var ch byte
	if c, ok := e.serial.Poll(); ok {
		ch = c
	}

	switch e.State() {
	case Menu:
		e.stepMenu(ch)
	case Playing:
		e.stepPlaying(ch)
	case LevelTransition:
		e.runLevelTransition()
	case GameOver, Win:
		e.stepOverMenu(ch)
	}
}

// confirm samples the confirm input: the right button, the dedicated select
// line, or an 'r' on the serial port.
func (e *Engine) confirm(ch byte) bool {
	return e.buttons.Pressed(input.Right) || e.buttons.Pressed(input.Select) || ch == 'r'
}

func (e *Engine) debounce() {
	e.clk.Sleep(e.cfg.Timings.MenuDebounce)
}

/*** Menu state ***/

func (e *Engine) stepMenu(ch byte) {
	if !e.menuDrawn {
		e.drawMenu()
		e.menuDrawn = true
	}

	switch {
	case e.buttons.Pressed(input.Down):
		e.debounce()
		e.menuSel = (e.menuSel + 1) % menuOptionCount
		e.drawMenu()
	case e.buttons.Pressed(input.Up):
		e.debounce()
		e.menuSel = (e.menuSel + menuOptionCount - 1) % menuOptionCount
		e.drawMenu()
	case e.confirm(ch):
		e.debounce()
		switch e.menuSel {
		case 0:
			e.startGame()
		case 1:
			e.showControls()
			e.waitConfirm()
			e.debounce()
			e.drawMenu()
		case 2:
			e.showCredits()
			e.waitConfirm()
			e.debounce()
			e.drawMenu()
		}
	}
}

// waitConfirm parks on a static screen until the confirm input fires again.
func (e *Engine) waitConfirm() {
	for !e.stopped() {
		ch, _ := e.serial.Poll()
		if e.confirm(ch) {
			return
		}
		e.clk.Sleep(e.cfg.Timings.LoopYield)
	}
}

// startGame resets everything to level 1 and enters Playing.
func (e *Engine) startGame() {
	e.menuDrawn = false
	e.setLevel(1)
	e.initLevel(1)
	e.startedAt = e.clk.Now()

	e.frame.Clear(0)
	e.drawBackground()
	e.drawHearts()
	e.drawEnemiesInitial()
	e.setState(Playing)
	e.logger.Info("session started", "level", 1)
}

/*** Playing state ***/

func (e *Engine) stepPlaying(ch byte) {
	e.checkWin()
	if e.State() != Playing {
		return
	}

	if e.chase.step(e.enemies, e.player.X, e.player.Y, e.enemyDelay(), e.level >= 2) {
		e.drawEnemies()
	}

	e.movePlayer(ch)
	// A pickup inside movePlayer can end the level; once the flow has left
	// Playing the rest of the iteration is frozen, so a lingering overlap
	// cannot turn a win into a game over.
	if e.State() != Playing {
		return
	}
	e.driftHearts()

	if caught(e.enemies, e.player.X, e.player.Y) {
		e.gameOver()
	}
}

func (e *Engine) enemyDelay() uint32 {
	if e.level == 1 {
		return e.cfg.Timings.EnemyDelayL1
	}
	return e.cfg.Timings.EnemyDelayL2
}

// movePlayer applies one pixel of movement per held direction and redraws on
// motion. Pickups only trigger on a moving player.
func (e *Engine) movePlayer(ch byte) {
	p := &e.player
	hmoved, vmoved := false, false

	if e.buttons.Pressed(input.Right) || ch == 'r' {
		if p.X < maxX {
			p.X++
			hmoved = true
			p.FlipH = false
		}
	}
	if e.buttons.Pressed(input.Left) {
		if p.X > 2 {
			p.X--
			hmoved = true
			p.FlipH = true
		}
	}
	if e.buttons.Pressed(input.Down) {
		if p.Y < maxY {
			p.Y++
			vmoved = true
			p.FlipV = false
		}
	}
	if e.buttons.Pressed(input.Up) {
		if p.Y > 1 {
			p.Y--
			vmoved = true
			p.FlipV = true
		}
	}

	if !hmoved && !vmoved {
		return
	}

	e.frame.FillRegion(p.OldX, p.OldY, spriteW, spriteH, 0)
	p.OldX, p.OldY = p.X, p.Y
	if hmoved {
		sprite := spritePlayerClosed
		if p.Toggle {
			sprite = spritePlayerOpen
		}
		e.frame.DrawImage(p.X, p.Y, spriteW, spriteH, sprite, p.FlipH, false)
		p.Toggle = !p.Toggle
	} else {
		e.frame.DrawImage(p.X, p.Y, spriteW, spriteH, spritePlayerUp, false, p.FlipV)
	}

	e.collectHearts()
}

// collectHearts consumes any heart the player is standing in: caption, erase,
// chirp, log, and an immediate win recheck.
func (e *Engine) collectHearts() {
	for i, h := range e.hearts {
		if h.Eaten || !h.box().Contains(e.player.X, e.player.Y) {
			continue
		}
		e.frame.DrawText2x(h.Caption, 7, h.CaptionY, colorCaption, 0)
		e.frame.FillRegion(h.X, h.Y, spriteW, spriteH, 0)
		h.Eaten = true
		e.setCollected(e.countEaten())

		e.fx.PlayNote(e.cfg.Timings.PickupToneFreq, e.cfg.Timings.PickupToneMS)
		e.logger.Info("heart collected", "heart", i+1, "level", e.level)
		e.checkWin()
		if e.State() != Playing {
			return
		}
	}
}

// driftHearts gives every uneaten heart a random nudge on a fixed interval.
func (e *Engine) driftHearts() {
	if e.clk.Since(e.heartTimer) < e.cfg.Timings.HeartDrift {
		return
	}
	e.heartTimer = e.clk.Now()

	for _, h := range e.hearts {
		if h.Eaten {
			continue
		}
		e.frame.FillRegion(h.X, h.Y, spriteW, spriteH, 0)
		h.DirX = e.rng.Intn(3) - 1
		h.DirY = e.rng.Intn(3) - 1
		h.X += e.cfg.Timings.HeartStep * h.DirX
		h.Y += e.cfg.Timings.HeartStep * h.DirY
		h.clampToField()
		e.frame.DrawImage(h.X, h.Y, spriteW, spriteH, h.Sprite(), false, false)
	}
}

// countEaten recounts collected hearts from the flags; the count is always
// derived, never incremented, so a recheck is idempotent.
func (e *Engine) countEaten() int {
	n := 0
	for _, h := range e.hearts {
		if h.Eaten {
			n++
		}
	}
	return n
}

// checkWin compares collected hearts against the level requirement and
// advances the flow when it is met.
func (e *Engine) checkWin() {
	collected := e.countEaten()
	e.setCollected(collected)
	if collected < requiredHearts(e.level) {
		return
	}
	if e.level < maze.LevelCount() {
		e.setState(LevelTransition)
	} else {
		e.win()
	}
}

/*** Level transition state ***/

// runLevelTransition shows the banner, holds it, then reinitializes for the
// next level. Input is not polled during the hold.
func (e *Engine) runLevelTransition() {
	next := e.level + 1
	e.frame.Clear(0)
	e.frame.DrawText2x("LEVEL 2!", 25, 60, colorWinText, 0)
	e.clk.Sleep(e.cfg.Timings.LevelBannerMS)

	e.setLevel(next)
	e.initLevel(next)
	e.drawBackground()
	e.drawHearts()
	e.drawEnemiesInitial()
	e.setState(Playing)
	e.logger.Info("level up", "level", next)
}

/*** Terminal states ***/

// gameOver clears the field and shows the restart panel.
func (e *Engine) gameOver() {
	e.setState(GameOver)
	e.frame.Clear(0)
	for _, en := range e.enemies {
		en.Active = false
	}
	e.overSel = 0
	e.drawOverMenu()
	e.report(OutcomeGameOver)
	e.logger.Info("game over", "level", e.level, "hearts", e.collected)
}

// win runs the blocking victory screen, then waits in the over menu.
func (e *Engine) win() {
	e.setState(Win)
	e.overSel = 0
	e.report(OutcomeWin)
	e.showWinScreen()
	e.logger.Info("game won", "level", e.level)
}

func (e *Engine) report(outcome string) {
	if e.OnResult == nil {
		return
	}
	e.OnResult(Result{
		Outcome:  outcome,
		Level:    e.level,
		Hearts:   e.countEaten(),
		Duration: e.clk.Since(e.startedAt),
	})
}

// stepOverMenu drives the play-again/main-menu panel shared by GameOver and
// Win.
func (e *Engine) stepOverMenu(ch byte) {
	if e.buttons.Pressed(input.Down) || e.buttons.Pressed(input.Up) {
		e.debounce()
		e.overSel = 1 - e.overSel
		e.drawOverMenu()
		return
	}
	if e.confirm(ch) {
		e.debounce()
		if e.overSel == 0 {
			e.startGame()
		} else {
			e.toMenu()
		}
	}
}

func (e *Engine) toMenu() {
	e.setLevel(1)
	e.setState(Menu)
	e.menuDrawn = false
	e.menuSel = 0
}

/*** Level setup ***/

// initLevel rebuilds the rosters and the player for a level.
func (e *Engine) initLevel(level int) {
	e.m = maze.ForLevel(level)
	e.hearts = buildHearts(level)
	e.enemies = buildEnemies(level)
	e.player = Player{X: 50, Y: 50, OldX: 50, OldY: 50}
	e.chase.lastMove = e.clk.Now()
	e.heartTimer = e.clk.Now()
	e.setCollected(0)
}

func (h *Heart) box() core.Rect {
	return core.Rect{X: h.X, Y: h.Y, W: spriteW, H: spriteH}
}

func (h *Heart) clampToField() {
	if h.X < 0 {
		h.X = 0
	}
	if h.X > maxX {
		h.X = maxX
	}
	if h.Y < 0 {
		h.Y = 0
	}
	if h.Y > maxY {
		h.Y = maxY
	}
}
