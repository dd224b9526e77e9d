package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/grove/engine/core"
)

// Window implements core.Window over a tcell screen. Mouse coordinates are
// cell positions; tcell reports button levels, which are turned into
// press/release events here.
type Window struct {
	scr     tcell.Screen
	events  chan tcell.Event
	done    chan struct{}
	once    sync.Once
	onEv    func(core.Event)
	buttons tcell.ButtonMask
	lastX   int
	lastY   int
	closed  bool
}

// NewWindow initializes the terminal. Callers must Destroy it to restore the tty.
func NewWindow(core.Config) (core.Window, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return Attach(scr), nil
}

// Attach wraps an initialized screen and starts reading its events.
func Attach(scr tcell.Screen) *Window {
	scr.EnableMouse()
	w := &Window{
		scr:    scr,
		events: make(chan tcell.Event, 128),
		done:   make(chan struct{}),
		lastX:  -1,
		lastY:  -1,
	}
	go w.read()
	return w
}

// read forwards screen events until the screen is finalized or the window is
// destroyed, whichever comes first.
func (w *Window) read() {
	defer close(w.events)
	for {
		ev := w.scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case w.events <- ev:
		case <-w.done:
			return
		}
	}
}

// Screen exposes the underlying screen for the renderer.
func (w *Window) Screen() tcell.Screen { return w.scr }

// Destroy restores the terminal and stops the event reader. It is safe to
// call more than once.
func (w *Window) Destroy() {
	w.once.Do(func() {
		close(w.done)
		w.scr.Fini()
	})
}

func (w *Window) PollEvents() {
	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				w.closed = true
				return
			}
			w.translate(ev)
		default:
			return
		}
	}
}

func (w *Window) translate(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		cw, ch := e.Size()
		w.scr.Sync()
		w.emit(core.EventResize{W: cw, H: ch})
	case *tcell.EventMouse:
		x, y := e.Position()
		if x != w.lastX || y != w.lastY {
			w.lastX, w.lastY = x, y
			w.emit(core.EventMouseMove{X: float64(x), Y: float64(y)})
		}
		btn := e.Buttons()
		for _, m := range mouseButtons {
			was, is := w.buttons&m.mask != 0, btn&m.mask != 0
			if was != is {
				w.emit(core.EventMouseButton{Button: m.button, Down: is})
			}
		}
		w.buttons = btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		if btn&tcell.WheelUp != 0 {
			w.emit(core.EventScroll{Yoff: 1})
		}
		if btn&tcell.WheelDown != 0 {
			w.emit(core.EventScroll{Yoff: -1})
		}
	case *tcell.EventKey:
		k := translateKey(e)
		if k == core.KeyUnknown {
			return
		}
		if k == core.KeyEscape || e.Key() == tcell.KeyCtrlC {
			w.emit(core.EventCloseRequested{})
		}
		// Terminals only report presses; emit the release right away.
		mods := translateMods(e.Modifiers())
		w.emit(core.EventKey{Key: k, Down: true, Mods: mods})
		w.emit(core.EventKey{Key: k, Down: false, Mods: mods})
	}
}

var mouseButtons = [...]struct {
	mask   tcell.ButtonMask
	button core.MouseButton
}{
	{tcell.Button1, core.MouseLeft},
	{tcell.Button2, core.MouseRight},
	{tcell.Button3, core.MouseMiddle},
}

func (w *Window) emit(ev core.Event) {
	if w.onEv != nil {
		w.onEv(ev)
	}
}

func (w *Window) SwapBuffers()                         { w.scr.Show() }
func (w *Window) ShouldClose() bool                    { return w.closed }
func (w *Window) RequestClose()                        { w.closed = true }
func (w *Window) Size() (int, int)                     { return w.scr.Size() }
func (w *Window) FramebufferSize() (int, int)          { return w.scr.Size() }
func (w *Window) SetTitle(string)                      {}
func (w *Window) SetEventCallback(cb func(core.Event)) { w.onEv = cb }

func translateKey(e *tcell.EventKey) core.Key {
	switch e.Key() {
	case tcell.KeyEscape:
		return core.KeyEscape
	case tcell.KeyEnter:
		return core.KeyEnter
	case tcell.KeyCtrlC:
		return core.KeyQ
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ':
			return core.KeySpace
		case 'd', 'D':
			return core.KeyD
		case 'p', 'P':
			return core.KeyP
		case 'q', 'Q':
			return core.KeyQ
		}
	}
	return core.KeyUnknown
}

func translateMods(m tcell.ModMask) core.Mod {
	var out core.Mod
	if m&tcell.ModShift != 0 {
		out |= core.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= core.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= core.ModSuper
	}
	return out
}
