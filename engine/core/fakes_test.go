package core

import "github.com/hubastard/grove/engine/ui"

type fakeRenderer struct {
	frames   [][]ui.DrawCommand
	resized  [][2]int
	shutdown bool
	err      error
}

func (r *fakeRenderer) Resize(w, h int)          { r.resized = append(r.resized, [2]int{w, h}) }
func (r *fakeRenderer) Clear(_, _, _, _ float32) {}
func (r *fakeRenderer) Render(cmds []ui.DrawCommand) error {
	r.frames = append(r.frames, append([]ui.DrawCommand(nil), cmds...))
	return r.err
}
func (r *fakeRenderer) Shutdown() { r.shutdown = true }

// clickApp shows one button and counts its clicks.
type clickApp struct {
	started, stopped bool
	clicks           int
	perFrame         []bool
	events           int
	build            func(*ui.Ctx)
}

func (a *clickApp) OnStart(*Engine)           { a.started = true }
func (a *clickApp) OnUpdate(*Engine, float64) {}
func (a *clickApp) OnUI(_ *Engine, ctx *ui.Ctx) {
	if a.build != nil {
		a.build(ctx)
		return
	}
	c := ctx.Button("OK")
	if c {
		a.clicks++
	}
	a.perFrame = append(a.perFrame, c)
}
func (a *clickApp) OnEvent(*Engine, Event) { a.events++ }
func (a *clickApp) OnShutdown(*Engine)     { a.stopped = true }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.TargetFPS = 0
	cfg.Width, cfg.Height = 640, 480
	return cfg
}

func newFakeWindow(frames ...[]Event) *HeadlessWindow {
	return NewHeadlessWindow(640, 480, frames...)
}

func runWith(app App, win *HeadlessWindow, rend *fakeRenderer) error {
	return Run(app, testConfig(),
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil })
}
