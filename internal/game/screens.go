package game

import (
	"fmt"

	"github.com/dermotk/heart-chase/internal/display"
	"github.com/dermotk/heart-chase/internal/maze"
)

/*** Playfield drawing ***/

// drawBackground paints the path color and the current maze's wall tiles.
func (e *Engine) drawBackground() {
	e.frame.Clear(colorPath)
	for gy := range maze.Rows {
		for gx := range maze.Cols {
			if e.m.Cell(gx, gy) == maze.Wall {
				e.frame.FillRegion(gx*maze.TileSize, gy*maze.TileSize, maze.TileSize, maze.TileSize, colorWall)
			}
		}
	}
}

func (e *Engine) drawHearts() {
	for _, h := range e.hearts {
		if !h.Eaten {
			e.frame.DrawImage(h.X, h.Y, spriteW, spriteH, h.Sprite(), false, false)
		}
	}
}

// drawEnemiesInitial paints every active enemy at its start position.
func (e *Engine) drawEnemiesInitial() {
	for _, en := range e.enemies {
		if en.Active {
			e.drawEnemy(en)
		}
	}
}

// drawEnemies erases each active enemy at its previous position and redraws
// it at the new one.
func (e *Engine) drawEnemies() {
	for _, en := range e.enemies {
		if !en.Active {
			continue
		}
		box := en.Box()
		e.frame.FillRegion(en.PrevX, en.PrevY, box.W, box.H, 0)
		e.drawEnemy(en)
	}
}

func (e *Engine) drawEnemy(en *Enemy) {
	if en.Kind == Boss {
		e.frame.DrawImage2x(en.X, en.Y, spriteW, spriteH, spritePumpkin, false, false)
		return
	}
	e.frame.DrawImage(en.X, en.Y, spriteW, spriteH, spritePumpkin, false, false)
}

/*** Menu screens ***/

func (e *Engine) drawMenuBorder() {
	for i := range display.Width {
		e.frame.SetPixel(i, 0, colorBorder)
		e.frame.SetPixel(i, display.Height-1, colorBorder)
	}
	for i := range display.Height {
		e.frame.SetPixel(0, i, colorBorder)
		e.frame.SetPixel(display.Width-1, i, colorBorder)
	}
}

func (e *Engine) drawMenu() {
	// Gradient backdrop.
	for y := range display.Height {
		c := display.RGBToWord(0, 0, uint8(y/2%32))
		e.frame.FillRegion(0, y, display.Width, 1, c)
	}
	e.drawMenuBorder()

	// Corner hearts.
	e.frame.DrawImage(5, 5, spriteW, spriteH, spriteHeart, false, false)
	e.frame.DrawImage(111, 5, spriteW, spriteH, spriteHeart, false, false)
	e.frame.DrawImage(5, 139, spriteW, spriteH, spriteHeart, false, false)
	e.frame.DrawImage(111, 139, spriteW, spriteH, spriteHeart, false, false)

	// Title with a one-pixel shadow.
	e.frame.DrawText2x("HEART", 36, 21, 0, 0)
	e.frame.DrawText2x("HEART", 35, 20, colorTitle, 0)
	e.frame.DrawText2x("CHASE", 36, 41, 0, 0)
	e.frame.DrawText2x("CHASE", 35, 40, colorTitle, 0)
	e.frame.FillRegion(20, 65, 88, 1, colorBorder)

	options := [menuOptionCount]string{"Start Game", "Controls", "Credits"}
	e.menuFrame = (e.menuFrame + 1) % 4
	for i, opt := range options {
		yPos := 80 + i*20
		color := colorUnselected
		if i == e.menuSel {
			color = colorSelected
			boxX := 35 - e.menuFrame
			boxW := 60 + e.menuFrame*2
			e.frame.FillRegion(boxX, yPos-2, boxW, 12, colorPanel)
		}
		e.frame.DrawText(opt, 40, yPos, color, 0)
	}

	// Chomping indicator beside the selected option.
	sprite := spritePlayerClosed
	if e.menuFrame%2 == 0 {
		sprite = spritePlayerOpen
	}
	e.frame.DrawImage(20, 78+e.menuSel*20, spriteW, spriteH, sprite, false, false)
}

func (e *Engine) showControls() {
	e.frame.Clear(0)
	e.drawMenuBorder()

	e.frame.DrawText2x("CONTROLS", 21, 21, 0, 0)
	e.frame.DrawText2x("CONTROLS", 20, 20, colorTitle, 0)
	e.frame.FillRegion(20, 35, 88, 1, colorBorder)
	e.frame.FillRegion(20, 120, 88, 1, colorBorder)

	e.frame.DrawText("Movement:", 20, 45, colorSelected, 0)
	e.frame.DrawText("^ Up Arrow", 30, 60, colorUnselected, 0)
	e.frame.DrawText("v Down Arrow", 30, 75, colorUnselected, 0)
	e.frame.DrawText("< Left Arrow", 30, 90, colorUnselected, 0)
	e.frame.DrawText("> Right Arrow", 30, 105, colorUnselected, 0)
	e.frame.DrawText("Press RIGHT to return", 15, 130, colorSelected, 0)
}

func (e *Engine) showCredits() {
	e.frame.Clear(0)
	e.drawMenuBorder()

	e.frame.DrawText2x("CREDITS", 31, 21, 0, 0)
	e.frame.DrawText2x("CREDITS", 30, 20, colorTitle, 0)
	e.frame.FillRegion(20, 35, 88, 1, colorBorder)
	e.frame.FillRegion(20, 120, 88, 1, colorBorder)

	e.frame.DrawText("Heart Chase", 30, 50, colorSelected, 0)
	e.frame.DrawText("Created by:", 30, 70, colorUnselected, 0)
	e.frame.DrawText("V, C, J", 35, 85, colorSelected, 0)
	e.frame.DrawText("Press RIGHT to return", 15, 130, colorSelected, 0)

	e.frame.DrawImage(10, 45, spriteW, spriteH, spriteHeart, false, false)
	e.frame.DrawImage(106, 45, spriteW, spriteH, spriteHeart, false, false)
}

/*** Terminal screens ***/

// drawOverMenu renders the play-again/main-menu panel for both outcomes.
func (e *Engine) drawOverMenu() {
	e.frame.FillRegion(20, 50, 88, 60, colorPanel)
	e.frame.FillRegion(20, 50, 88, 1, colorBorder)
	e.frame.FillRegion(20, 110, 88, 1, colorBorder)
	e.frame.FillRegion(20, 50, 1, 60, colorBorder)
	e.frame.FillRegion(107, 50, 1, 60, colorBorder)

	if e.State() == Win {
		e.frame.DrawText("YOU WIN!", 40, 60, colorWinText, 0)
	} else {
		e.frame.DrawText("GAME OVER", 35, 60, colorLoseText, 0)
	}

	playColor, menuColor := colorWhite, colorWhite
	if e.overSel == 0 {
		playColor = colorSelected
	} else {
		menuColor = colorSelected
	}
	e.frame.DrawText("Play Again", 35, 80, playColor, 0)
	e.frame.DrawText("Main Menu", 35, 95, menuColor, 0)
	e.frame.DrawImage(25, 78+e.overSel*15, spriteW, spriteH, spritePlayerOpen, false, false)
}

// showWinScreen plays the fanfare and builds up the victory screen with
// blocking pauses. Input is dropped for its duration.
func (e *Engine) showWinScreen() {
	for y := range display.Height {
		c := display.RGBToWord(0, 0, uint8(y/2%64))
		e.frame.FillRegion(0, y, display.Width, 1, c)
	}

	e.fx.PlayTune(
		[]uint32{800, 1000, 1200, 1500},
		[]uint32{200, 200, 200, 400},
	)

	for i := range display.Width {
		e.frame.SetPixel(i, 0, colorWinGold)
		e.frame.SetPixel(i, display.Height-1, colorWinGold)
	}
	for i := range display.Height {
		e.frame.SetPixel(0, i, colorWinGold)
		e.frame.SetPixel(display.Width-1, i, colorWinGold)
	}

	// All four corner hearts land on the first pause together.
	e.clk.Sleep(100)
	e.frame.DrawImage(5, 5, spriteW, spriteH, spriteHeart, false, false)
	e.frame.DrawImage(111, 5, spriteW, spriteH, spriteHeart, false, false)
	e.frame.DrawImage(5, 139, spriteW, spriteH, spriteHeart, false, false)
	e.frame.DrawImage(111, 139, spriteW, spriteH, spriteHeart, false, false)

	e.frame.DrawText2x("YOU WIN!", 26, 41, 0, 0)
	e.frame.DrawText2x("YOU WIN!", 25, 40, colorWinGold, 0)
	e.clk.Sleep(500)

	e.frame.FillRegion(20, 65, 88, 1, colorWinPink)
	e.frame.FillRegion(20, 95, 88, 1, colorWinPink)

	messages := []string{
		"CONGRATULATIONS!",
		"ALL HEARTS",
		"COLLECTED!",
		"YOU'RE Eating!",
	}
	for i, msg := range messages {
		e.clk.Sleep(200)
		color := colorWinBlue
		if i%2 == 1 {
			color = colorWinPink
		}
		e.frame.DrawText(msg, 64-len(msg)*3, 70+i*20, color, 0)
	}

	e.clk.Sleep(200)
	e.frame.DrawText(fmt.Sprintf("LEVELS: %d", e.level), 40, 140, colorWinGold, 0)
}
