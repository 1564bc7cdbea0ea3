package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/render"
)

var borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// FieldRenderer draws the playing field border. The simulation clamps
// entities to [0, W] x [0, H]; the border sits one cell outside that
// box so entities never overdraw it.
type FieldRenderer struct {
	gameCtx *engine.GameContext
}

// NewFieldRenderer creates the field border renderer.
func NewFieldRenderer(gameCtx *engine.GameContext) *FieldRenderer {
	return &FieldRenderer{gameCtx: gameCtx}
}

// Render implements render.SystemRenderer.
func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	left := ctx.FieldXOffset - 1
	top := ctx.FieldYOffset - 1
	right := ctx.FieldXOffset + ctx.FieldWidth
	bottom := ctx.FieldYOffset + ctx.FieldHeight

	for x := left; x <= right; x++ {
		buf.Set(x, top, tcell.RuneHLine, borderStyle)
		buf.Set(x, bottom, tcell.RuneHLine, borderStyle)
	}
	for y := top; y <= bottom; y++ {
		buf.Set(left, y, tcell.RuneVLine, borderStyle)
		buf.Set(right, y, tcell.RuneVLine, borderStyle)
	}
	buf.Set(left, top, tcell.RuneULCorner, borderStyle)
	buf.Set(right, top, tcell.RuneURCorner, borderStyle)
	buf.Set(left, bottom, tcell.RuneLLCorner, borderStyle)
	buf.Set(right, bottom, tcell.RuneLRCorner, borderStyle)
}
