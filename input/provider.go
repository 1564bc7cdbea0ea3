package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridfall/engine"
)

// HoldWindow is how long a movement key counts as held after a press.
// Terminals deliver no key-up events, so a held key is emulated from
// the auto-repeat stream: every repeat refreshes the window. The value
// must sit above typical repeat intervals (~30-80ms) or held movement
// stutters.
const HoldWindow = 150 * time.Millisecond

// Provider turns raw terminal key events into the two queries the
// simulation polls once per tick: continuous movement axes and
// edge-triggered actions.
//
// HandleEvent and the query methods all run on the main loop
// goroutine (events arrive over a channel the loop selects on), so no
// synchronization is needed.
type Provider struct {
	tp engine.TimeProvider

	heldUntil [directionCount]time.Time
	pressed   [actionCount]bool
}

// NewProvider creates a provider on the given time source.
func NewProvider(tp engine.TimeProvider) *Provider {
	return &Provider{tp: tp}
}

// HandleEvent consumes one terminal key event. Unmapped keys are
// ignored.
func (p *Provider) HandleEvent(ev *tcell.EventKey) {
	now := p.tp.Now()

	switch ev.Key() {
	case tcell.KeyUp:
		p.heldUntil[DirUp] = now.Add(HoldWindow)
		return
	case tcell.KeyDown:
		p.heldUntil[DirDown] = now.Add(HoldWindow)
		return
	case tcell.KeyLeft:
		p.heldUntil[DirLeft] = now.Add(HoldWindow)
		return
	case tcell.KeyRight:
		p.heldUntil[DirRight] = now.Add(HoldWindow)
		return
	case tcell.KeyEnter:
		p.pressed[ActionStart] = true
		return
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.pressed[ActionQuit] = true
		return
	case tcell.KeyTab:
		p.pressed[ActionNextArea] = true
		return
	case tcell.KeyBacktab:
		p.pressed[ActionPrevArea] = true
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'w', 'k':
		p.heldUntil[DirUp] = now.Add(HoldWindow)
	case 's', 'j':
		p.heldUntil[DirDown] = now.Add(HoldWindow)
	case 'a', 'h':
		p.heldUntil[DirLeft] = now.Add(HoldWindow)
	case 'd', 'l':
		p.heldUntil[DirRight] = now.Add(HoldWindow)
	case 'p', ' ':
		p.pressed[ActionPause] = true
	case 'r':
		p.pressed[ActionRestart] = true
	case 'q':
		p.pressed[ActionQuit] = true
	case 'm':
		p.pressed[ActionMute] = true
	case 'n', ']':
		p.pressed[ActionNextArea] = true
	case 'b', '[':
		p.pressed[ActionPrevArea] = true
	}
}

// Axes returns the signed unit contribution per movement axis, each in
// {-1, 0, +1}. Opposing held directions cancel. The caller scales by
// the player speed; diagonal output is deliberately not normalized.
func (p *Provider) Axes() (ax, ay float64) {
	now := p.tp.Now()
	if now.Before(p.heldUntil[DirLeft]) {
		ax -= 1
	}
	if now.Before(p.heldUntil[DirRight]) {
		ax += 1
	}
	if now.Before(p.heldUntil[DirUp]) {
		ay -= 1
	}
	if now.Before(p.heldUntil[DirDown]) {
		ay += 1
	}
	return ax, ay
}

// JustPressed reports whether the action was pressed since the last
// query and consumes the edge.
func (p *Provider) JustPressed(a Action) bool {
	if a >= actionCount || !p.pressed[a] {
		return false
	}
	p.pressed[a] = false
	return true
}

// Reset drops all held directions and pending presses. Used when the
// run restarts so stale input never leaks into the new run.
func (p *Provider) Reset() {
	p.heldUntil = [directionCount]time.Time{}
	p.pressed = [actionCount]bool{}
}
