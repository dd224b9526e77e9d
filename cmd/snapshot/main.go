package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hubastard/grove/engine/assets"
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/demo"
	"github.com/hubastard/grove/engine/gfx/raster"
	"github.com/hubastard/grove/engine/text"
)

// snapshotApp saves the last rendered frame before the renderer shuts down.
type snapshotApp struct {
	*demo.App
	rend *raster.Renderer
	out  string
	err  error
}

func (a *snapshotApp) OnShutdown(e *core.Engine) {
	a.App.OnShutdown(e)
	if a.rend != nil {
		a.err = a.rend.SavePNG(a.out)
	}
}

func main() {
	base := core.DefaultConfig()
	base.Width, base.Height = 480, 320
	base.TargetFPS = 0
	base.VSync = false
	cfg, flags, err := core.LoadArgs("snapshot", os.Args[1:], base)
	if err != nil {
		log.Fatal(err)
	}

	var logo = assets.Checker(32, 32, 8, [4]uint8{230, 230, 230, 255}, [4]uint8{60, 140, 90, 255})
	if flags.Logo != "" {
		if logo, err = assets.LoadPNG(flags.Logo); err != nil {
			log.Fatal(err)
		}
	}
	font, err := text.Load(cfg.FontPath, float32(cfg.FontSize))
	if err != nil {
		log.Fatal(err)
	}
	defer font.Close()

	app := &snapshotApp{App: demo.New(logo), out: flags.Out}

	// One idle frame settles the align offsets, then two clicks on the counter
	// with the pointer left hovering over it.
	pad := cfg.UI.Padding
	x := float64(pad[0] + cfg.UI.ButtonWidth/2)
	y := float64(pad[1] + cfg.UI.ButtonHeight/2)
	script := [][]core.Event{nil}
	script = append(script, core.Click(x, y)...)
	script = append(script, core.Click(x, y)...)
	script = append(script, nil)
	win := core.NewHeadlessWindow(cfg.Width, cfg.Height, script...)

	err = core.Run(app, cfg,
		func(core.Config) (core.Window, error) { return win, nil },
		func(w core.Window, _ core.Config) (core.Renderer, error) {
			fw, fh := w.FramebufferSize()
			app.rend = raster.New(fw, fh, font)
			return app.rend, nil
		})
	if err == nil {
		err = app.err
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%d clicks)\n", flags.Out, app.Counter)
}
