package main

import (
	"image"
	"log"
	"os"

	"github.com/hubastard/grove/engine/assets"
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/demo"
	glbackend "github.com/hubastard/grove/engine/gfx/gl"
	"github.com/hubastard/grove/engine/platform"
	"github.com/hubastard/grove/engine/profiler"
)

func main() {
	base := core.DefaultConfig()
	base.Title = "grove ui sandbox"
	cfg, flags, err := core.LoadArgs("sandbox", os.Args[1:], base)
	if err != nil {
		log.Fatal(err)
	}

	logo, err := loadLogo(flags.Logo)
	if err != nil {
		log.Fatal(err)
	}

	profiler.Init(1 << 16)
	app := demo.New(logo)

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		win = w.(*platform.GLFWWindow)
		return w, nil
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	err = core.Run(app, cfg, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadLogo(path string) (image.Image, error) {
	if path == "" {
		return assets.Checker(32, 32, 8, [4]uint8{230, 230, 230, 255}, [4]uint8{60, 140, 90, 255}), nil
	}
	return assets.LoadPNG(path)
}
