package core

import (
	"time"

	"github.com/hubastard/grove/engine/profiler"
	"github.com/hubastard/grove/engine/ui"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)              // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) // called once per frame before the UI pass
	OnUI(e *Engine, ctx *ui.Ctx)    // describes the interface for this frame
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	UI       *ui.Ctx
	Layers   LayerStack
	Config   Config
	Timing   *profiler.FrameTimes

	start  time.Time
	frames uint64
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Frames reports how many frames have been presented.
func (e *Engine) Frames() uint64 { return e.frames }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	Size() (int, int)            // logical size, matches pointer coordinates
	FramebufferSize() (int, int) // pixels
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer consumes the frame's draw commands.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Render(cmds []ui.DrawCommand) error
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyD
	KeyP
	KeyQ
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Mask maps a mouse button to the UI button set.
func (b MouseButton) Mask() ui.ButtonMask {
	switch b {
	case MouseLeft:
		return ui.ButtonPrimary
	case MouseRight:
		return ui.ButtonSecondary
	case MouseMiddle:
		return ui.ButtonMiddle
	default:
		return 0
	}
}
