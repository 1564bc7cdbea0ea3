package input

// Action is a discrete control the game queries edge-wise: the press
// is reported once by JustPressed and then cleared. Movement is not an
// action; it is polled continuously through Axes.
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionRestart
	ActionQuit
	ActionMute
	ActionNextArea
	ActionPrevArea

	actionCount // sentinel, keep last
)

// String returns the action name for logs.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	case ActionMute:
		return "mute"
	case ActionNextArea:
		return "next-area"
	case ActionPrevArea:
		return "prev-area"
	default:
		return "none"
	}
}

// Direction indexes the four movement contributions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	directionCount // sentinel, keep last
)
