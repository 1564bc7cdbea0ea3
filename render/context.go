package render

import (
	"time"

	"github.com/lixenwraith/gridfall/config"
	"github.com/lixenwraith/gridfall/core"
	"github.com/lixenwraith/gridfall/engine"
)

// RenderContext is the per-frame snapshot renderers read, passed by
// value. It decouples renderers from simulation internals: everything
// a renderer needs beyond entity data lives here.
type RenderContext struct {
	// Terminal dimensions
	ScreenWidth  int
	ScreenHeight int

	// Field placement: the simulation field is centered on screen,
	// one world unit per cell
	FieldXOffset int
	FieldYOffset int
	FieldWidth   int
	FieldHeight  int

	// Run state
	Phase       engine.GamePhase
	Variant     config.Variant
	Score       int
	Defeated    int
	Elapsed     time.Duration
	TargetSecs  float64
	FrameNumber int64

	// Player state
	Vitality    int
	MaxVitality int

	// Area progression (areas variant)
	AreaIndex   int
	AreaCount   int
	AreaCleared bool

	// Collaborator state
	Muted     bool
	BestScore int
}

// NewRenderContext snapshots the game context for one frame.
func NewRenderContext(gc *engine.GameContext, screenW, screenH int, muted bool, best int) RenderContext {
	cfg := gc.Cfg
	fieldW := int(cfg.World.Width)
	fieldH := int(cfg.World.Height)

	// Center the field, leaving at least the HUD row at the bottom
	offX := (screenW - fieldW) / 2
	if offX < 0 {
		offX = 0
	}
	offY := (screenH - 1 - fieldH) / 2
	if offY < 0 {
		offY = 0
	}

	rc := RenderContext{
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
		FieldXOffset: offX,
		FieldYOffset: offY,
		FieldWidth:   fieldW,
		FieldHeight:  fieldH,
		Phase:        gc.State.CurrentPhase,
		Variant:      cfg.Run.Variant,
		Score:        gc.State.Score,
		Defeated:     gc.State.Defeated,
		Elapsed:      gc.Clock.Elapsed(),
		TargetSecs:   cfg.Run.TargetSeconds,
		FrameNumber:  gc.State.FrameNumber,
		AreaIndex:    gc.State.AreaIndex,
		AreaCount:    cfg.Run.Areas,
		Muted:        muted,
		BestScore:    best,
	}

	if idx := gc.State.AreaIndex; idx >= 0 && idx < len(gc.State.AreaCleared) {
		rc.AreaCleared = gc.State.AreaCleared[idx]
	}
	if p := gc.World.Player(); p != core.InvalidEntity {
		if vit, ok := gc.World.Vitalities.Get(p); ok {
			rc.Vitality = vit.Current
			rc.MaxVitality = vit.Max
		}
	}
	return rc
}
