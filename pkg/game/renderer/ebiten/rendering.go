package ebiten

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	// Fill background first
	screen.Fill(colorBackground)

	s := e.session
	if s == nil || s.Game.Grid == nil || e.sansFontSource == nil || e.monoFontSource == nil {
		// Can't draw without a maze or fonts
		return
	}

	screenWidth := screen.Bounds().Dx()
	grid := s.Game.Grid

	// Center the maze horizontally under the header
	mapWidth := grid.Width() * e.cellSize
	mapHeight := grid.Height() * e.cellSize
	mapX := max(frameMargin, (screenWidth-mapWidth)/2)
	mapY := headerHeight + frameMargin

	e.drawHeader(screen, s, screenWidth)
	e.drawMaze(screen, s.Game, mapX, mapY)
	e.drawPlayer(screen, s.Game.Player, mapX, mapY)
	e.drawMessages(screen, s.Game, mapX, mapY+mapHeight+frameMargin/2)

	if s.Game.IsFinished() {
		e.drawFinishedOverlay(screen, s.Game, mapX, mapY, mapWidth, mapHeight)
	}
}

// drawHeader draws the title, move counter and countdown
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, s *gameplay.Session, screenWidth int) {
	face := e.getSansFontFace()
	y := float64(headerHeight)/2 - face.Size/2

	title := fmt.Sprintf("%s   %s: %d", gotext.Get("WINDOW_TITLE"), gotext.Get("MOVES"), s.Game.Moves)
	drawColoredText(screen, title, frameMargin, y, colorText, face)

	clockColor := colorAction
	if s.Countdown.Remaining() <= 10*time.Second {
		clockColor = colorDenied
	}
	clock := fmt.Sprintf("%s: %s", gotext.Get("TIME_LEFT"), s.TimeLeft())
	drawRightText(screen, clock, float64(screenWidth-frameMargin), y, clockColor, e.getMonoFontFace())
}

// drawMaze draws one filled rectangle per cell
func (e *EbitenRenderer) drawMaze(screen *ebiten.Image, g *state.Game, mapX, mapY int) {
	size := float32(e.cellSize)

	g.Grid.ForEachCell(func(c world.Coord, t world.Tag) {
		x := float32(mapX + c.X*e.cellSize)
		y := float32(mapY + c.Y*e.cellSize)
		vector.DrawFilledRect(screen, x, y, size, size, cellColor(t), false)
	})
}

// cellColor returns the fill color of a tag
func cellColor(t world.Tag) color.Color {
	switch t {
	case world.Exit:
		return colorExit
	case world.Floor:
		return colorFloor
	default:
		return colorWall
	}
}

// drawPlayer draws the player token as a circle inset in its cell
func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, at world.Coord, mapX, mapY int) {
	half := float32(e.cellSize) / 2
	cx := float32(mapX+at.X*e.cellSize) + half
	cy := float32(mapY+at.Y*e.cellSize) + half
	radius := half * (1 - 2*playerInset)

	vector.DrawFilledCircle(screen, cx, cy, radius, colorPlayer, true)
}

// drawMessages draws the most recent messages, newest last and brightest
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, g *state.Game, x, y int) {
	face := e.getSansFontFace()
	lineHeight := face.Size * 1.5

	start := max(0, len(g.Messages)-messageLines)
	for i, msg := range g.Messages[start:] {
		col := colorSubtle
		if start+i == len(g.Messages)-1 {
			col = colorText
		}
		drawColoredText(screen, e.FormatText(msg), float64(x), float64(y)+float64(i)*lineHeight, col, face)
	}
}

// drawFinishedOverlay dims the maze and shows the outcome with the restart hint
func (e *EbitenRenderer) drawFinishedOverlay(screen *ebiten.Image, g *state.Game, mapX, mapY, mapWidth, mapHeight int) {
	vector.DrawFilledRect(screen, float32(mapX), float32(mapY), float32(mapWidth), float32(mapHeight), colorOverlay, false)

	face := e.getSansFontFace()
	lineHeight := face.Size * 1.8
	panelHeight := float32(lineHeight * 2.5)
	panelY := float32(mapY) + float32(mapHeight)/2 - panelHeight/2
	vector.DrawFilledRect(screen, float32(mapX), panelY, float32(mapWidth), panelHeight, colorPanelBackdrop, false)

	headline, col := gotext.Get("ESCAPED"), colorSuccess
	if g.Outcome == state.OutcomeTimedOut {
		headline, col = gotext.Get("TIMED_OUT"), colorDenied
	}

	cx := float64(mapX) + float64(mapWidth)/2
	top := float64(panelY) + lineHeight/2
	drawCenteredText(screen, headline, cx, top, col, face)
	drawCenteredText(screen, e.FormatText(gotext.Get("PRESS_RESTART")), cx, top+lineHeight, colorText, face)
}
