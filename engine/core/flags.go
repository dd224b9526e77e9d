package core

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds the command-line options that are not part of Config.
type Flags struct {
	ConfigPath string
	Logo       string // PNG shown by the demo toolbar
	Out        string // snapshot output path
}

// LoadArgs builds a driver's config: base, then the -config file, then any
// flag given explicitly on the command line.
func LoadArgs(name string, args []string, base Config) (Config, Flags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var usage strings.Builder
	fs.SetOutput(&usage)

	var f Flags
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML config file")
	fs.StringVar(&f.Logo, "logo", "", "PNG image for the toolbar")
	fs.StringVar(&f.Out, "out", "snapshot.png", "snapshot output path")
	width := fs.Int("width", base.Width, "window width")
	height := fs.Int("height", base.Height, "window height")
	fps := fs.Int("fps", base.TargetFPS, "frame cap when vsync is off (0 = uncapped)")
	vsync := fs.Bool("vsync", base.VSync, "wait for vertical sync")
	debug := fs.Bool("debug", base.UI.Debug, "log duplicate widget identifiers and per-frame stats")
	font := fs.String("font", base.FontPath, "TTF/OTF font (empty = built-in bitmap font)")

	if err := fs.Parse(args); err != nil {
		return Config{}, Flags{}, fmt.Errorf("%w\n%s", err, usage.String())
	}

	cfg := base
	if f.ConfigPath != "" {
		if err := DecodeFile(f.ConfigPath, &cfg); err != nil {
			return Config{}, Flags{}, err
		}
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fps":
			cfg.TargetFPS = *fps
		case "vsync":
			cfg.VSync = *vsync
		case "debug":
			cfg.UI.Debug = *debug
		case "font":
			cfg.FontPath = *font
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, Flags{}, err
	}
	return cfg, f, nil
}
