package demo

import (
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/profiler"
	"github.com/hubastard/grove/engine/scratch"
	"github.com/hubastard/grove/engine/ui"
)

// StatsLayer shows frame statistics under the application UI. D toggles it.
type StatsLayer struct {
	Visible bool
	buf     *scratch.Buffer
}

func NewStatsLayer(capacity int) *StatsLayer {
	return &StatsLayer{Visible: true, buf: scratch.New(capacity)}
}

func (l *StatsLayer) OnAttach(*core.Engine) {}
func (l *StatsLayer) OnDetach(*core.Engine) {}

func (l *StatsLayer) OnUI(e *core.Engine, ctx *ui.Ctx) {
	l.buf.Reset()
	if !l.Visible {
		return
	}
	fps := 0.0
	if e != nil && e.Timing != nil {
		fps = e.Timing.FPS()
	}
	l.Build(ctx, fps)
}

// Build emits the overlay. Rows are buttons keyed by name so their text can
// change every frame without changing identity.
func (l *StatsLayer) Build(ctx *ui.Ctx, fps float64) {
	st := ctx.Stats()
	ctx.BeginPanel()
	ctx.Button(l.buf.Sprintf("fps %.1f##stats.fps", fps))
	ctx.Button(l.buf.Sprintf("frame %u##stats.frame", st.Frame))
	ctx.Button(l.buf.Sprintf("cmds %d##stats.cmds", st.Commands))
	ctx.Button(l.buf.Sprintf("depth %d##stats.depth", st.PeakDepth))
	ctx.Button(l.buf.Sprintf("store %d##stats.store", st.StorageEntries))
	ctx.Button(l.buf.Sprintf("mem %d KB##stats.mem", int(profiler.MemoryUsage()>>10)))
	ctx.EndPanel()
}

func (l *StatsLayer) OnEvent(_ *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyD {
		l.Visible = !l.Visible
		return true
	}
	return false
}
