package core

// Action is a semantic input, abstracted from the key or mouse event
// that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // h, Left arrow - move the column cursor left
	ActionRight             // l, Right arrow - move the column cursor right
	ActionDrop              // Enter, Space, digit, mouse click - drop a piece
	ActionRestart           // R - new game with the same players
	ActionNewPlayers        // N - back to the color form
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionNewPlayers:
		return "NewPlayers"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded input event.
// Column is set for ActionDrop when the event names a column directly
// (a digit key or a click); it is -1 when the cursor column applies.
type Input struct {
	Action Action
	Column int
}

// NoInput is the zero-effect input.
var NoInput = Input{Action: ActionNone, Column: -1}

// Drop returns a drop input for an explicit column.
func Drop(col int) Input {
	return Input{Action: ActionDrop, Column: col}
}

// Do returns an input for an action that carries no column.
func Do(a Action) Input {
	return Input{Action: a, Column: -1}
}

// HasColumn reports whether the input names its own column.
func (in Input) HasColumn() bool {
	return in.Column >= 0
}
