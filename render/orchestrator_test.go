package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recordingRenderer struct {
	name string
	log  *[]string
}

func (r *recordingRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*r.log = append(*r.log, r.name)
}

type toggledRenderer struct {
	recordingRenderer
	visible bool
}

func (r *toggledRenderer) IsVisible() bool {
	return r.visible
}

func TestRenderOrderFollowsPriority(t *testing.T) {
	o := NewOrchestrator(nil, 40, 20)
	var log []string

	o.Register(&recordingRenderer{name: "overlay", log: &log}, PriorityOverlay)
	o.Register(&recordingRenderer{name: "field", log: &log}, PriorityField)
	o.Register(&recordingRenderer{name: "hud", log: &log}, PriorityHUD)
	o.Register(&recordingRenderer{name: "entities", log: &log}, PriorityEntities)

	o.RenderFrame(RenderContext{})

	want := []string{"field", "entities", "hud", "overlay"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d renderers to run, got %d", len(want), len(log))
	}
	for i, name := range want {
		if log[i] != name {
			t.Errorf("Expected position %d to be %q, got %q", i, name, log[i])
		}
	}
}

func TestRenderOrderStableWithinPriority(t *testing.T) {
	o := NewOrchestrator(nil, 40, 20)
	var log []string

	o.Register(&recordingRenderer{name: "first", log: &log}, PriorityEntities)
	o.Register(&recordingRenderer{name: "second", log: &log}, PriorityEntities)
	o.Register(&recordingRenderer{name: "third", log: &log}, PriorityEntities)

	o.RenderFrame(RenderContext{})

	want := []string{"first", "second", "third"}
	for i, name := range want {
		if log[i] != name {
			t.Errorf("Expected position %d to be %q, got %q", i, name, log[i])
		}
	}
}

func TestHiddenRendererSkipped(t *testing.T) {
	o := NewOrchestrator(nil, 40, 20)
	var log []string

	hidden := &toggledRenderer{visible: false}
	hidden.name = "hidden"
	hidden.log = &log
	shown := &toggledRenderer{visible: true}
	shown.name = "shown"
	shown.log = &log

	o.Register(hidden, PriorityField)
	o.Register(shown, PriorityHUD)

	o.RenderFrame(RenderContext{})

	if len(log) != 1 || log[0] != "shown" {
		t.Errorf("Expected only visible renderer to run, got %v", log)
	}
}

func TestRenderFrameClearsBuffer(t *testing.T) {
	o := NewOrchestrator(nil, 10, 5)
	o.Buffer().Set(2, 2, 'X', tcell.StyleDefault)

	o.RenderFrame(RenderContext{})

	if got := o.Buffer().Get(2, 2).Rune; got != ' ' {
		t.Errorf("Expected cleared cell to hold space, got %q", got)
	}
}

func TestBufferBoundsIgnoredSilently(t *testing.T) {
	b := NewRenderBuffer(10, 5)
	b.Set(-1, 0, 'X', tcell.StyleDefault)
	b.Set(10, 0, 'X', tcell.StyleDefault)
	b.Set(0, 5, 'X', tcell.StyleDefault)

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if b.Get(x, y).Rune == 'X' {
				t.Fatalf("Expected out-of-bounds writes to be dropped, found one at (%d,%d)", x, y)
			}
		}
	}
}

func TestBufferSetTextClips(t *testing.T) {
	b := NewRenderBuffer(5, 1)
	b.SetText(3, 0, "abcd", tcell.StyleDefault)

	if got := b.Get(3, 0).Rune; got != 'a' {
		t.Errorf("Expected 'a' at x=3, got %q", got)
	}
	if got := b.Get(4, 0).Rune; got != 'b' {
		t.Errorf("Expected 'b' at x=4, got %q", got)
	}
}

func TestBufferResizePreservesNothingOutOfRange(t *testing.T) {
	b := NewRenderBuffer(4, 4)
	b.Set(3, 3, 'X', tcell.StyleDefault)
	b.Resize(8, 8)

	w, h := b.Size()
	if w != 8 || h != 8 {
		t.Fatalf("Expected 8x8 after resize, got %dx%d", w, h)
	}
	// Writes to the grown region must land.
	b.Set(7, 7, 'Y', tcell.StyleDefault)
	if got := b.Get(7, 7).Rune; got != 'Y' {
		t.Errorf("Expected 'Y' at (7,7), got %q", got)
	}
}
