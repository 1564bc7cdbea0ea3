package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/render"
)

const vitalityBarWidth = 20

var (
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	barFullStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	barLowStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	barEmptyStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	mutedStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed)
	unmutedStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
)

// HUDRenderer draws the status line under the field: vitality bar,
// score, defeated count, the variant indicator (remaining time or
// current area), FPS, and the audio state.
type HUDRenderer struct {
	gameCtx *engine.GameContext

	// FPS sampling over real time
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewHUDRenderer creates the status line renderer.
func NewHUDRenderer(gameCtx *engine.GameContext) *HUDRenderer {
	return &HUDRenderer{
		gameCtx:       gameCtx,
		lastFpsUpdate: time.Now(),
	}
}

// Render implements render.SystemRenderer.
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.frameCount++
	now := time.Now()
	if now.Sub(r.lastFpsUpdate) >= time.Second {
		r.currentFps = r.frameCount
		r.frameCount = 0
		r.lastFpsUpdate = now
	}

	y := ctx.FieldYOffset + ctx.FieldHeight + 1
	x := ctx.FieldXOffset

	// Audio indicator
	if ctx.Muted {
		buf.SetText(x, y, " MUTE ", mutedStyle)
	} else {
		buf.SetText(x, y, " SND ", unmutedStyle)
	}
	x += 7

	// Vitality bar
	buf.SetText(x, y, "HP ", hudStyle)
	x += 3
	filled := 0
	if ctx.MaxVitality > 0 {
		filled = ctx.Vitality * vitalityBarWidth / ctx.MaxVitality
	}
	fillStyle := barFullStyle
	if ctx.MaxVitality > 0 && ctx.Vitality*4 <= ctx.MaxVitality {
		fillStyle = barLowStyle
	}
	for i := 0; i < vitalityBarWidth; i++ {
		if i < filled {
			buf.Set(x+i, y, '█', fillStyle)
		} else {
			buf.Set(x+i, y, '░', barEmptyStyle)
		}
	}
	x += vitalityBarWidth + 1
	hp := fmt.Sprintf("%d/%d", ctx.Vitality, ctx.MaxVitality)
	buf.SetText(x, y, hp, hudStyle)
	x += len(hp) + 2

	// Counters
	counters := fmt.Sprintf("SCORE %d  KILLS %d", ctx.Score, ctx.Defeated)
	buf.SetText(x, y, counters, hudStyle)
	x += len(counters) + 2

	// Variant indicator
	var indicator string
	switch ctx.Variant {
	case config.VariantTimed:
		remaining := ctx.TargetSecs - ctx.Elapsed.Seconds()
		if remaining < 0 {
			remaining = 0
		}
		indicator = fmt.Sprintf("TIME %3.0fs", remaining)
	case config.VariantAreas:
		indicator = fmt.Sprintf("AREA %d/%d", ctx.AreaIndex+1, ctx.AreaCount)
		if ctx.AreaCleared {
			indicator += " CLEAR"
		}
	}
	buf.SetText(x, y, indicator, hudStyle)
	x += len(indicator) + 2

	buf.SetText(x, y, fmt.Sprintf("FPS %d", r.currentFps), hudStyle)
}
