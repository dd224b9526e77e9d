package core

// HeadlessWindow is a window without a display. It replays one batch of
// events per frame and asks to close once the script is exhausted; snapshot
// runs and tests drive Run with it.
type HeadlessWindow struct {
	frames [][]Event
	polled int
	closed bool
	cb     func(Event)
	w, h   int
	title  string
}

func NewHeadlessWindow(w, h int, frames ...[]Event) *HeadlessWindow {
	return &HeadlessWindow{frames: frames, w: w, h: h}
}

func (hw *HeadlessWindow) PollEvents() {
	if hw.polled >= len(hw.frames) {
		hw.closed = true
		return
	}
	evs := hw.frames[hw.polled]
	hw.polled++
	for _, ev := range evs {
		if r, ok := ev.(EventResize); ok {
			hw.w, hw.h = r.W, r.H
		}
		if hw.cb != nil {
			hw.cb(ev)
		}
	}
}

// Polled reports how many scripted frames have been delivered.
func (hw *HeadlessWindow) Polled() int { return hw.polled }

func (hw *HeadlessWindow) SwapBuffers() {}
func (hw *HeadlessWindow) ShouldClose() bool {
	return hw.closed || hw.polled >= len(hw.frames)
}
func (hw *HeadlessWindow) RequestClose()                   { hw.closed = true }
func (hw *HeadlessWindow) Size() (int, int)                { return hw.w, hw.h }
func (hw *HeadlessWindow) FramebufferSize() (int, int)     { return hw.w, hw.h }
func (hw *HeadlessWindow) SetTitle(t string)               { hw.title = t }
func (hw *HeadlessWindow) SetEventCallback(cb func(Event)) { hw.cb = cb }

// Click scripts a primary click at (x,y): move, press, release on three frames.
func Click(x, y float64) [][]Event {
	return [][]Event{
		{EventMouseMove{X: x, Y: y}},
		{EventMouseButton{Button: MouseLeft, Down: true}},
		{EventMouseButton{Button: MouseLeft, Down: false}},
	}
}
