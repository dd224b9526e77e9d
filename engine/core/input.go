package core

import (
	"math"

	"github.com/hubastard/grove/engine/ui"
)

// Input accumulates window events into the per-frame pointer snapshot.
// Button edges are kept until the next BeginPoll.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	held           ui.ButtonMask
	pressed        ui.ButtonMask
	released       ui.ButtonMask
	scrollY        float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

// BeginPoll clears the edge masks. Call it exactly once per frame, right
// before the platform delivers that frame's events; otherwise a click edge
// leaks into the next frame.
func (in *Input) BeginPoll() {
	in.pressed = 0
	in.released = 0
	in.scrollY = 0
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		m := e.Button.Mask()
		if e.Down {
			in.held |= m
			in.pressed |= m
		} else {
			in.held &^= m
			in.released |= m
		}
	case EventScroll:
		in.scrollY += e.Yoff
	}
}

// Snapshot returns the state the UI hit-tests against this frame.
func (in *Input) Snapshot() ui.Input {
	return ui.Input{
		Pointer:  ui.Pt(int(math.Floor(in.mouseX)), int(math.Floor(in.mouseY))),
		Held:     in.held,
		Pressed:  in.pressed,
		Released: in.released,
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
func (in *Input) Scroll() float64           { return in.scrollY }
