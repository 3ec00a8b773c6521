package ui

import (
	"fmt"
	"strconv"

	"tunebite/config"
	"tunebite/game"
	"tunebite/game/types"
)

// Sprite ids, matching the sprite assets in config
const (
	SpriteFood        = "food"
	SpriteSpecialFood = "special_food"
)

// TextSlot names a fixed place on screen where text is drawn
type TextSlot int

const (
	SlotTitle TextSlot = iota
	SlotScore
	SlotTimer
	SlotBanner
	SlotStats
)

// Canvas is the set of draw primitives a frontend provides
type Canvas interface {
	Clear(bg config.Color)
	DrawBorder(c config.Color)
	DrawRect(cell types.Point, c config.Color)
	DrawSprite(cell types.Point, sprite string)
	DrawText(text string, slot TextSlot, c config.Color)
}

// Scene describes what stays the same from frame to frame
type Scene struct {
	Title      string
	Background config.Color
	Foreground config.Color
}

func NewScene(cfg config.Config) Scene {
	return Scene{
		Title:      cfg.Title,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
	}
}

// Draw paints one frame of v onto c
func (s Scene) Draw(c Canvas, v game.View) {
	c.Clear(s.Background)
	c.DrawBorder(s.Foreground)

	for _, p := range v.Body {
		if v.Grid.Contains(p) {
			c.DrawRect(p, s.Foreground)
		}
	}
	c.DrawSprite(v.Food, SpriteFood)
	if v.HasSpecial {
		c.DrawSprite(v.Special, SpriteSpecialFood)
		c.DrawText(strconv.Itoa(v.SpecialTimer), SlotTimer, s.Foreground)
	}

	c.DrawText(s.Title, SlotTitle, s.Foreground)
	c.DrawText(strconv.Itoa(v.Score), SlotScore, s.Foreground)

	switch v.State {
	case types.Home:
		c.DrawText("Press any key to start", SlotBanner, s.Foreground)
	case types.Stopped:
		c.DrawText(fmt.Sprintf("Game Over - score %d - press any key", v.Score), SlotBanner, s.Foreground)
	}

	if v.Games > 0 {
		c.DrawText(fmt.Sprintf("Best %d   Games %d   Avg %.1f", v.Best, v.Games, v.Average), SlotStats, s.Foreground)
	}
}
