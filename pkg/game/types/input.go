package types

// InputState is the set of input intents applied during one physics tick.
// Mapping raw key presses to intents is the client's responsibility.
type InputState struct {
	Left    bool
	Right   bool
	Jump    bool
	Restart bool
	Quit    bool
}

// Direction resolves the horizontal intents to -1, 0 or 1. Holding both
// directions cancels out.
func (i InputState) Direction() float64 {
	direction := 0.0
	if i.Right {
		direction += 1
	}
	if i.Left {
		direction -= 1
	}
	return direction
}
