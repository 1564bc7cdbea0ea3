package components

// ColorClass represents semantic color categories for rendering.
// Renderers resolve these to concrete terminal styles.
type ColorClass uint8

const (
	ColorNone ColorClass = iota
	ColorPlayer
	ColorHostile
	ColorPickup
	ColorFlash
)

// VisualComponent holds presentation state for an entity. W and H are
// the footprint in world units, used as fallback bounds when the entity
// has no collider. FlashFor counts down seconds of damage flash.
type VisualComponent struct {
	Glyph    rune
	Color    ColorClass
	W, H     float64
	FlashFor float64
}
