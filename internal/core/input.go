package core

import "strings"

// Action represents a frontend control, abstracted from physical key presses.
// Steering keys are not actions; they go to the engine unchanged.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause
	ActionRestart        // R - new game after game over
	ActionHelp           // ? - toggle help legend
	ActionQuit           // Q, Esc, Ctrl+C - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForKey maps a key name to a control action.
func ActionForKey(key string) Action {
	switch strings.ToLower(key) {
	case "p":
		return ActionPause
	case "r":
		return ActionRestart
	case "?":
		return ActionHelp
	case "q", "esc", "escape", "ctrl+c":
		return ActionQuit
	default:
		return ActionNone
	}
}
