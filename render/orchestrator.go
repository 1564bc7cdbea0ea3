package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority Priority
	index    int // registration order for stable ties
}

// Orchestrator coordinates the render pipeline: clear the buffer, run
// every registered renderer in (priority, registration) order, flush
// to the screen.
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator over a screen. A nil screen
// is allowed for tests; rendering then stops at the buffer.
func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the given priority, keeping the list
// sorted via insertion sort.
func (o *Orchestrator) Register(r SystemRenderer, priority Priority) {
	entry := rendererEntry{renderer: r, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}
	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions after a terminal resize.
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	if o.screen != nil {
		o.screen.Sync()
	}
}

// Buffer exposes the frame buffer for tests.
func (o *Orchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the pipeline for one frame.
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	if o.screen != nil {
		o.buffer.FlushToScreen(o.screen)
		o.screen.Show()
	}
}
