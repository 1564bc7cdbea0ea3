package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridfall/engine"
	"github.com/lixenwraith/gridfall/render"
)

var (
	overlayStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	hintStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// OverlayRenderer draws the centered modal for non-playing phases:
// start banner, pause, game over, victory.
type OverlayRenderer struct {
	gameCtx *engine.GameContext
}

// NewOverlayRenderer creates the phase overlay renderer.
func NewOverlayRenderer(gameCtx *engine.GameContext) *OverlayRenderer {
	return &OverlayRenderer{gameCtx: gameCtx}
}

// IsVisible hides the overlay while the simulation is running.
func (r *OverlayRenderer) IsVisible() bool {
	return r.gameCtx.State.CurrentPhase != engine.PhasePlaying
}

// Render implements render.SystemRenderer.
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	var title string
	var lines []string

	switch ctx.Phase {
	case engine.PhaseAwaitingStart:
		title = "G R I D F A L L"
		lines = []string{
			fmt.Sprintf("variant: %s", ctx.Variant),
			fmt.Sprintf("best score: %d", ctx.BestScore),
			"",
			"move: wasd / hjkl / arrows",
			"pause: p   mute: m   quit: q",
			"",
			"press enter to start",
		}
	case engine.PhasePaused:
		title = "PAUSED"
		lines = []string{"press p to resume"}
	case engine.PhaseGameOver:
		title = "GAME OVER"
		lines = []string{
			fmt.Sprintf("score: %d", ctx.Score),
			fmt.Sprintf("hostiles defeated: %d", ctx.Defeated),
			fmt.Sprintf("survived: %.0fs", ctx.Elapsed.Seconds()),
			"",
			"press r to restart, q to quit",
		}
	case engine.PhaseVictory:
		title = "VICTORY"
		lines = []string{
			fmt.Sprintf("score: %d", ctx.Score),
			fmt.Sprintf("hostiles defeated: %d", ctx.Defeated),
			"",
			"press r to play again, q to quit",
		}
	default:
		return
	}

	r.drawBox(ctx, buf, title, lines)
}

// drawBox centers a bordered box sized to its content.
func (r *OverlayRenderer) drawBox(ctx render.RenderContext, buf *render.RenderBuffer, title string, lines []string) {
	width := len(title)
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	width += 6            // padding and borders
	height := len(lines) + 4 // borders, title, spacer

	startX := (ctx.ScreenWidth - width) / 2
	startY := (ctx.ScreenHeight - height) / 2

	buf.FillRect(startX, startY, width, height, ' ', overlayStyle)
	for x := startX; x < startX+width; x++ {
		buf.Set(x, startY, tcell.RuneHLine, overlayStyle)
		buf.Set(x, startY+height-1, tcell.RuneHLine, overlayStyle)
	}
	for y := startY; y < startY+height; y++ {
		buf.Set(startX, y, tcell.RuneVLine, overlayStyle)
		buf.Set(startX+width-1, y, tcell.RuneVLine, overlayStyle)
	}
	buf.Set(startX, startY, tcell.RuneULCorner, overlayStyle)
	buf.Set(startX+width-1, startY, tcell.RuneURCorner, overlayStyle)
	buf.Set(startX, startY+height-1, tcell.RuneLLCorner, overlayStyle)
	buf.Set(startX+width-1, startY+height-1, tcell.RuneLRCorner, overlayStyle)

	buf.SetText(startX+(width-len(title))/2, startY+1, title, titleStyle)
	for i, l := range lines {
		style := overlayStyle
		if strings.HasPrefix(l, "press") || strings.HasPrefix(l, "move") || strings.HasPrefix(l, "pause") {
			style = hintStyle
		}
		buf.SetText(startX+3, startY+3+i, l, style)
	}
}
