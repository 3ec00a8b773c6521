package ui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hashicorp/go-multierror"

	"tunebite/config"
	"tunebite/game"
	"tunebite/game/types"
)

const (
	borderPadding   = 5
	borderThickness = 5
	titleFontSize   = 60
	scoreFontSize   = 40
	bannerFontSize  = 28
	smallFontSize   = 20
	// segmentRoundness approximates a 10px corner radius on a 25px cell
	segmentRoundness = 0.8
)

// Renderer draws the game into the raylib window
type Renderer struct {
	scene    Scene
	cellSize int32
	cells    int32
	offset   int32
	textures map[string]rl.Texture2D
}

// NewRenderer loads the sprite textures. The window must already be open.
func NewRenderer(cfg config.Config) (*Renderer, error) {
	r := &Renderer{
		scene:    NewScene(cfg),
		cellSize: int32(cfg.CellSize),
		cells:    int32(cfg.Cells),
		offset:   int32(cfg.Offset),
		textures: make(map[string]rl.Texture2D, len(cfg.Sprites)),
	}

	var merr *multierror.Error
	for _, a := range cfg.Sprites {
		path := cfg.AssetPath(a.Path)
		if _, err := os.Stat(path); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("sprite %s: %w", a.ID, err))
			continue
		}
		tex := rl.LoadTexture(path)
		if !rl.IsTextureReady(tex) {
			merr = multierror.Append(merr, fmt.Errorf("sprite %s: cannot load %s", a.ID, path))
			continue
		}
		r.textures[a.ID] = tex
	}
	if err := merr.ErrorOrNil(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// Draw renders one frame
func (r *Renderer) Draw(v game.View) {
	rl.BeginDrawing()
	r.scene.Draw(r, v)
	rl.EndDrawing()
}

func (r *Renderer) Close() {
	for id, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, id)
	}
}

func (r *Renderer) Clear(bg config.Color) {
	rl.ClearBackground(toRaylib(bg))
}

func (r *Renderer) DrawBorder(c config.Color) {
	side := float32(r.cellSize*r.cells + 2*borderPadding)
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      float32(r.offset - borderPadding),
		Y:      float32(r.offset - borderPadding),
		Width:  side,
		Height: side,
	}, borderThickness, toRaylib(c))
}

func (r *Renderer) DrawRect(cell types.Point, c config.Color) {
	rl.DrawRectangleRounded(r.cellRect(cell), segmentRoundness, 6, toRaylib(c))
}

func (r *Renderer) DrawSprite(cell types.Point, sprite string) {
	tex, ok := r.textures[sprite]
	if !ok {
		rl.DrawRectangleRec(r.cellRect(cell), rl.Red)
		return
	}
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	rl.DrawTexturePro(tex, src, r.cellRect(cell), rl.Vector2{}, 0, rl.White)
}

func (r *Renderer) DrawText(text string, slot TextSlot, c config.Color) {
	gridRight := r.offset - borderPadding + r.cellSize*r.cells + 2*borderPadding
	gridBottom := r.offset + r.cellSize*r.cells + borderPadding

	switch slot {
	case SlotTitle:
		rl.DrawText(text, r.offset-borderPadding, 20, titleFontSize, toRaylib(c))
	case SlotScore:
		rl.DrawText(text, gridRight, 20, scoreFontSize, toRaylib(c))
	case SlotTimer:
		rl.DrawText(text, gridRight, 20+scoreFontSize, smallFontSize, toRaylib(c))
	case SlotBanner:
		width := rl.MeasureText(text, bannerFontSize)
		x := r.offset + (r.cellSize*r.cells-width)/2
		y := r.offset + (r.cellSize*r.cells-bannerFontSize)/2
		rl.DrawText(text, x, y, bannerFontSize, toRaylib(c))
	case SlotStats:
		rl.DrawText(text, r.offset-borderPadding, gridBottom+10, smallFontSize, toRaylib(c))
	}
}

func (r *Renderer) cellRect(cell types.Point) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(r.offset + int32(cell.X)*r.cellSize),
		Y:      float32(r.offset + int32(cell.Y)*r.cellSize),
		Width:  float32(r.cellSize),
		Height: float32(r.cellSize),
	}
}

func toRaylib(c config.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
