package core

// Action represents a semantic input, abstracted from physical key presses
// and mouse clicks.
type Action int

const (
	ActionNone       Action = iota
	ActionTouch             // Space - "screen touched" from the keyboard
	ActionTap               // Left click anywhere - "screen touched" from a pointer
	ActionReplay            // Enter/R or a click on the replay button
	ActionScreenshot        // Ctrl+S - dump the current frame to disk
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTouch:
		return "Touch"
	case ActionTap:
		return "Tap"
	case ActionReplay:
		return "Replay"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// FromKeyboard reports whether the action originates from a key press.
// The score screen only accepts keyboard touches as a replay request.
func (a Action) FromKeyboard() bool {
	return a == ActionTouch
}
