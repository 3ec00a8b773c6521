package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gdamore/tcell/v2"

	"tunebite/game/types"
)

// RaylibActions drains the keys pressed since the last frame, in order
func RaylibActions() []types.Action {
	var actions []types.Action
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if a := raylibAction(key); a != types.ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// raylibAction maps a key code; any unmapped key counts as start
func raylibAction(key int32) types.Action {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.ActionUp
	case rl.KeyDown, rl.KeyS:
		return types.ActionDown
	case rl.KeyLeft, rl.KeyA:
		return types.ActionLeft
	case rl.KeyRight, rl.KeyD:
		return types.ActionRight
	case rl.KeyQ, rl.KeyEscape:
		return types.ActionQuit
	case rl.KeyNull:
		return types.ActionNone
	}
	return types.ActionStart
}

// TerminalAction maps a tcell key event; any unmapped key counts as start
func TerminalAction(ev *tcell.EventKey) types.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.ActionUp
	case tcell.KeyDown:
		return types.ActionDown
	case tcell.KeyLeft:
		return types.ActionLeft
	case tcell.KeyRight:
		return types.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return types.ActionUp
		case 's', 'j':
			return types.ActionDown
		case 'a', 'h':
			return types.ActionLeft
		case 'd', 'l':
			return types.ActionRight
		case 'q':
			return types.ActionQuit
		}
	}
	return types.ActionStart
}
