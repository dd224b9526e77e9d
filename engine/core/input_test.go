package core

import (
	"testing"

	"github.com/hubastard/grove/engine/ui"
)

func TestInputEdgesLastOneFrame(t *testing.T) {
	in := NewInput()
	in.BeginPoll()
	in.Handle(EventMouseMove{X: 10.7, Y: -0.2})
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})

	s := in.Snapshot()
	if s.Pointer != ui.Pt(10, -1) {
		t.Fatalf("pointer = %v", s.Pointer)
	}
	if s.Pressed != ui.ButtonPrimary || s.Held != ui.ButtonPrimary || s.Released != 0 {
		t.Fatalf("snapshot = %+v", s)
	}

	in.BeginPoll()
	s = in.Snapshot()
	if s.Pressed != 0 || s.Held != ui.ButtonPrimary {
		t.Fatalf("next frame = %+v", s)
	}

	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	in.Handle(EventMouseButton{Button: MouseRight, Down: true})
	s = in.Snapshot()
	if s.Released != ui.ButtonPrimary || s.Held != ui.ButtonSecondary || s.Pressed != ui.ButtonSecondary {
		t.Fatalf("release frame = %+v", s)
	}
}

func TestInputKeysAndScroll(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyD, Down: true})
	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: 2})
	if !in.IsKeyDown(KeyD) || in.IsKeyDown(KeyQ) {
		t.Fatal("key state wrong")
	}
	if in.Scroll() != 3 {
		t.Fatalf("scroll = %v", in.Scroll())
	}
	in.BeginPoll()
	if in.Scroll() != 0 || !in.IsKeyDown(KeyD) {
		t.Fatal("BeginPoll should clear scroll but keep keys")
	}
}

func TestMouseButtonMask(t *testing.T) {
	if MouseMiddle.Mask() != ui.ButtonMiddle || MouseButton(9).Mask() != 0 {
		t.Fatal("mask mapping")
	}
}
