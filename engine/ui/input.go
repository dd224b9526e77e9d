package ui

// ButtonMask is a set of pointer buttons.
type ButtonMask uint8

const (
	ButtonPrimary ButtonMask = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// Input is the raw pointer snapshot for one frame.
// Pressed and Released are edges since the previous frame; Held is level state.
type Input struct {
	Pointer  Point
	Held     ButtonMask
	Pressed  ButtonMask
	Released ButtonMask
}

// interact runs the hover/active state machine for the widget id occupying r
// and reports whether it was clicked this frame.
func (c *Ctx) interact(id ID, r Rect) (clicked bool) {
	pressed := c.in.Pressed&ButtonPrimary != 0
	released := c.in.Released&ButtonPrimary != 0

	if !r.Contains(c.in.Pointer) {
		if c.hoverID == id {
			c.hoverID = 0
		}
		// Releasing a capture outside the widget is not a click.
		if c.activeID == id && released {
			c.activeID = 0
		}
		return false
	}

	if c.hoverID == 0 || c.hoverGreedy {
		c.hoverID = id
	}
	if c.activeID == 0 && c.hoverID == id && pressed {
		c.activeID = id
	}
	if c.activeID == id && released {
		c.activeID = 0
		return true
	}
	return false
}

// stateOf reports the interaction flags of id after this frame's hit-test.
func (c *Ctx) stateOf(id ID, clicked bool) StateFlags {
	var s StateFlags
	if c.hoverID == id {
		s |= StateHovered
		c.hoverSeen = true
	}
	if c.activeID == id {
		s |= StateActive
		c.activeSeen = true
	}
	if clicked {
		s |= StateClicked
	}
	return s
}
