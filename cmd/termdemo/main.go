package main

import (
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/hubastard/grove/engine/assets"
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/demo"
	"github.com/hubastard/grove/engine/term"
)

func main() {
	cfg, flags, err := core.LoadArgs("termdemo", os.Args[1:], term.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	log.SetOutput(io.Discard)
	if cfg.UI.Debug {
		// stderr belongs to the terminal UI; keep debug output in a file.
		f, err := os.Create("termdemo.log")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Images are drawn as shaded cells, so the logo is only loaded when asked for.
	var logo image.Image
	if flags.Logo != "" {
		if logo, err = assets.LoadPNG(flags.Logo); err != nil {
			log.Fatal(err)
		}
	}

	var win *term.Window
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := term.NewWindow(cfg)
		if err != nil {
			return nil, err
		}
		win = w.(*term.Window)
		return w, nil
	}
	newRenderer := func(core.Window, core.Config) (core.Renderer, error) {
		return term.NewRenderer(win.Screen()), nil
	}

	err = core.Run(demo.New(logo), cfg, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
