package ui

import (
	"github.com/gdamore/tcell/v2"

	"tunebite/config"
	"tunebite/game"
	"tunebite/game/types"
)

const (
	// each grid cell is two terminal columns wide so cells look square
	termCellWidth = 2
	termOriginX   = 1
	termOriginY   = 2
)

var terminalSprites = map[string]struct {
	r     rune
	color tcell.Color
}{
	SpriteFood:        {'●', tcell.ColorRed},
	SpriteSpecialFood: {'★', tcell.ColorGold},
}

// TerminalRenderer draws the game on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	scene  Scene
	cells  int
	bg     tcell.Color
}

func NewTerminalRenderer(screen tcell.Screen, cfg config.Config) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		scene:  NewScene(cfg),
		cells:  cfg.Cells,
	}
}

// Draw renders one frame and flushes it to the terminal
func (r *TerminalRenderer) Draw(v game.View) {
	r.scene.Draw(r, v)
	r.screen.Show()
}

func (r *TerminalRenderer) Clear(bg config.Color) {
	r.bg = toTcell(bg)
	r.screen.SetStyle(tcell.StyleDefault.Background(r.bg))
	r.screen.Clear()
}

func (r *TerminalRenderer) DrawBorder(c config.Color) {
	style := r.style(c)
	left := termOriginX
	top := termOriginY
	right := termOriginX + r.cells*termCellWidth + 1
	bottom := termOriginY + r.cells + 1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *TerminalRenderer) DrawRect(cell types.Point, c config.Color) {
	x, y := r.cellOrigin(cell)
	style := r.style(c)
	for i := 0; i < termCellWidth; i++ {
		r.screen.SetContent(x+i, y, '█', nil, style)
	}
}

func (r *TerminalRenderer) DrawSprite(cell types.Point, sprite string) {
	s, ok := terminalSprites[sprite]
	if !ok {
		s.r, s.color = '?', tcell.ColorRed
	}
	x, y := r.cellOrigin(cell)
	r.screen.SetContent(x, y, s.r, nil, tcell.StyleDefault.Background(r.bg).Foreground(s.color))
}

func (r *TerminalRenderer) DrawText(text string, slot TextSlot, c config.Color) {
	style := r.style(c)
	gridWidth := r.cells*termCellWidth + 2

	var x, y int
	switch slot {
	case SlotTitle:
		x, y = termOriginX, 0
	case SlotScore:
		x, y = termOriginX+gridWidth-len([]rune(text)), 0
	case SlotTimer:
		x, y = termOriginX+gridWidth+2, termOriginY
	case SlotBanner:
		x = termOriginX + (gridWidth-len([]rune(text)))/2
		y = termOriginY + r.cells/2
		style = style.Reverse(true)
	case SlotStats:
		x, y = termOriginX, termOriginY+r.cells+2
	}
	if x < 0 {
		x = 0
	}
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *TerminalRenderer) cellOrigin(cell types.Point) (int, int) {
	return termOriginX + 1 + cell.X*termCellWidth, termOriginY + 1 + cell.Y
}

func (r *TerminalRenderer) style(c config.Color) tcell.Style {
	return tcell.StyleDefault.Background(r.bg).Foreground(toTcell(c))
}

func toTcell(c config.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
