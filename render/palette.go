package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridfall/components"
)

// Palette maps semantic color classes to terminal styles. This is the
// only place presentation colors exist; game rules never see them.
var palette = map[components.ColorClass]tcell.Style{
	components.ColorPlayer:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	components.ColorHostile: tcell.StyleDefault.Foreground(tcell.ColorRed),
	components.ColorPickup:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	components.ColorFlash:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
}

// StyleFor resolves a color class, falling back to the default style
// for unknown classes. A missing entry degrades, never errors.
func StyleFor(c components.ColorClass) tcell.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return tcell.StyleDefault
}
