// Package demo is the interface shown by every driver: the GL sandbox, the
// terminal and PNG snapshots all run this same App.
package demo

import (
	"fmt"
	"image"

	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/profiler"
	"github.com/hubastard/grove/engine/scratch"
	"github.com/hubastard/grove/engine/ui"
)

// App is a small control panel: a click counter, a right-aligned toolbar and
// a pair of overlapping buttons showing greedy hover.
type App struct {
	Counter int
	Logo    image.Image // optional; drawn in the toolbar
	Top     string      // which overlapping button got the last click

	labels *scratch.Buffer
	stats  *StatsLayer
	quit   bool
}

func New(logo image.Image) *App {
	return &App{Logo: logo, labels: scratch.New(1024)}
}

// Build describes one frame. It needs nothing but the context, so tests and
// drivers without an Engine can call it directly.
func (a *App) Build(ctx *ui.Ctx) {
	bs := ctx.ButtonSize()
	unit := max(bs.Y, 1)

	ctx.BeginPanel()

	counter := a.labels.Label("counter", func(b *scratch.Buffer) { b.S("Clicks: ").I(a.Counter) })
	if ctx.Button(counter) {
		a.Counter++
	}
	if ctx.Button("Reset") {
		a.Counter = 0
	}
	// Separator; also gives the panel the width the toolbar aligns against.
	ctx.Rect(3*bs.X, max(unit/4, 1))

	ctx.BeginAlign(ui.AlignRight, "toolbar")
	ctx.SetDirection(ui.Horizontal)
	if a.Logo != nil {
		ctx.Image(a.Logo, unit, unit)
	}
	if ctx.Button("Quit") {
		a.quit = true
	}
	ctx.EndAlign()

	a.overlap(ctx, bs)

	ctx.EndPanel()
}

// overlap emits two buttons sharing an area. The later one is greedy, so it
// takes hover even when the earlier one claimed it first this frame.
func (a *App) overlap(ctx *ui.Ctx, bs ui.Point) {
	ctx.BeginPanel()
	origin := ctx.Layout().Pos
	if ctx.Button("Under") {
		a.Top = "Under"
	}
	ctx.SetCursor(origin.X+bs.X/2, origin.Y+bs.Y/2)
	ctx.SetHoverGreedy(true)
	if ctx.Button("Over") {
		a.Top = "Over"
	}
	ctx.SetHoverGreedy(false)
	ctx.EndPanel()
}

// QuitRequested reports whether the Quit button was clicked.
func (a *App) QuitRequested() bool { return a.quit }

// ===== core.App =====

func (a *App) OnStart(e *core.Engine) {
	if a.labels == nil || a.labels.Cap() < e.Config.ScratchCapacity {
		a.labels = scratch.New(e.Config.ScratchCapacity)
	}
	a.stats = NewStatsLayer(e.Config.ScratchCapacity)
	e.PushLayer(a.stats)
	e.Window.SetTitle(e.Config.Title)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.labels.Reset()
	if a.quit {
		e.Window.RequestClose()
	}
}

func (a *App) OnUI(e *core.Engine, ctx *ui.Ctx) { a.Build(ctx) }

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return
	}
	switch {
	case k.Key == core.KeyEscape || k.Key == core.KeyQ:
		e.Window.RequestClose()
	case k.Key == core.KeyP && k.Mods&core.ModCtrl != 0:
		if path, err := profiler.OpenProfilerGraph(); err == nil {
			fmt.Println("speedscope dump:", path)
		} else {
			fmt.Println("profiler dump error:", err)
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {}
