package render

// SystemRenderer is implemented by anything with visual output. The
// orchestrator invokes renderers in priority order into the shared
// cell buffer.
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for conditional renderers
// (overlays that only exist in certain phases).
type VisibilityToggle interface {
	IsVisible() bool
}

// Priority determines render order. Lower values render first.
type Priority int

const (
	PriorityField Priority = iota * 100
	PriorityEntities
	PriorityHUD
	PriorityOverlay
)
