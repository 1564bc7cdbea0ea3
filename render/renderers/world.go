package renderers

import (
	"math"

	"github.com/lixenwraith/gridfall/components"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/render"
)

// WorldRenderer draws every entity glyph into the field. One world
// unit maps to one cell; positions round to the nearest cell. An
// entity with a damage flash running draws in the flash style instead
// of its own color.
type WorldRenderer struct {
	gameCtx *engine.GameContext
}

// NewWorldRenderer creates the entity glyph renderer.
func NewWorldRenderer(gameCtx *engine.GameContext) *WorldRenderer {
	return &WorldRenderer{gameCtx: gameCtx}
}

// Render implements render.SystemRenderer.
func (r *WorldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := r.gameCtx.World

	w.Visuals.ForEach(func(e core.Entity, vis components.VisualComponent) {
		tr, ok := w.Transforms.Get(e)
		if !ok {
			return
		}

		style := render.StyleFor(vis.Color)
		if vis.FlashFor > 0 {
			style = render.StyleFor(components.ColorFlash)
		}

		x := ctx.FieldXOffset + int(math.Round(tr.Pos.X))
		y := ctx.FieldYOffset + int(math.Round(tr.Pos.Y))

		// Footprints larger than one unit fill their box
		cw := int(math.Round(vis.W))
		ch := int(math.Round(vis.H))
		if cw < 1 {
			cw = 1
		}
		if ch < 1 {
			ch = 1
		}
		for dy := 0; dy < ch; dy++ {
			for dx := 0; dx < cw; dx++ {
				buf.Set(x+dx, y+dy, vis.Glyph, style)
			}
		}
	})
}
