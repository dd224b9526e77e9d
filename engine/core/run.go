package core

import (
	"fmt"
	"log"
	"log/slog"
	"runtime"
	"time"

	"github.com/hubastard/grove/engine/profiler"
	"github.com/hubastard/grove/engine/ui"
)

// Run wires the platform window + renderer and executes the main loop:
// poll input, build the UI, render the draw list, present, throttle.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	if err := cfg.Validate(); err != nil {
		return err
	}

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	var logger *slog.Logger
	if cfg.UI.Debug {
		logger = slog.Default()
		log.Printf("Engine start: %dx%d framebuffer, target %d fps", w, h, cfg.TargetFPS)
	}

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		UI:       ui.New(cfg.UIOptions(logger)),
		Config:   cfg,
		Timing:   profiler.NewFrameTimes(60),
		start:    time.Now(),
	}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			handled = l.OnEvent(eng, ev)
			return handled
		})
		if !handled {
			app.OnEvent(eng, ev)
		}
		switch ev.(type) {
		case EventResize:
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		case EventCloseRequested:
			win.RequestClose()
		}
	})

	app.OnStart(eng)

	var (
		tick  time.Duration
		prev  = time.Now()
		clear = cfg.ClearColor
	)
	if cfg.TargetFPS > 0 && !cfg.VSync {
		tick = time.Second / time.Duration(cfg.TargetFPS)
	}
	build := func(ctx *ui.Ctx) {
		app.OnUI(eng, ctx)
		eng.Layers.ForEach(func(l Layer) { l.OnUI(eng, ctx) })
	}

	for !win.ShouldClose() {
		now := time.Now()
		dt := now.Sub(prev)
		prev = now
		eng.Timing.Add(dt)
		endFrame := profiler.Start("frame")

		// Edges are cleared before the platform delivers this frame's events.
		eng.Input.BeginPoll()
		win.PollEvents()

		app.OnUpdate(eng, dt.Seconds())

		endUI := profiler.Start("ui")
		cmds, err := eng.UI.Frame(eng.Input.Snapshot(), build)
		endUI()
		if err != nil {
			shutdown(app, eng)
			return fmt.Errorf("frame %d: %w", eng.frames, err)
		}

		endRender := profiler.Start("render")
		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		if err := rend.Render(cmds); err != nil {
			endRender()
			shutdown(app, eng)
			return fmt.Errorf("render frame %d: %w", eng.frames, err)
		}
		endRender()

		win.SwapBuffers()
		eng.frames++
		endFrame()

		if tick > 0 {
			if spent := time.Since(now); spent < tick {
				time.Sleep(tick - spent)
			}
		}
	}

	shutdown(app, eng)
	log.Println("Engine exit")
	return nil
}

func shutdown(app App, eng *Engine) {
	for {
		if _, ok := eng.PopLayer(); !ok {
			break
		}
	}
	app.OnShutdown(eng)
}
