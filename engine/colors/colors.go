package colors

import (
	"image/color"

	"github.com/hubastard/grove/engine/ui"
)

// Color is linear RGBA in [0,1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA8 converts to 8-bit straight alpha, clamping out-of-range channels.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Palette maps draw commands to colors. Every backend shares one so that
// the GL window, the terminal and PNG snapshots agree.
type Palette struct {
	Rect         Color
	Panel        Color
	Button       Color
	ButtonHover  Color
	ButtonActive Color
	Image        Color // placeholder when an image payload cannot be drawn
	Text         Color
	Border       Color
}

func DefaultPalette() Palette {
	return Palette{
		Rect:         Color{0.30, 0.55, 0.85, 1},
		Panel:        Color{0.16, 0.18, 0.22, 1},
		Button:       Color{0.26, 0.30, 0.36, 1},
		ButtonHover:  Color{0.34, 0.40, 0.48, 1},
		ButtonActive: Color{0.18, 0.45, 0.30, 1},
		Image:        Color{0.6, 0.2, 0.6, 1},
		Text:         Color{0.92, 0.93, 0.95, 1},
		Border:       Color{0.05, 0.05, 0.06, 1},
	}
}

// Fill returns the background color of cmd.
func (p Palette) Fill(cmd ui.DrawCommand) Color {
	switch cmd.Kind {
	case ui.KindPanel:
		return p.Panel
	case ui.KindButton:
		switch {
		case cmd.State&ui.StateActive != 0:
			return p.ButtonActive
		case cmd.State&ui.StateHovered != 0:
			return p.ButtonHover
		}
		return p.Button
	case ui.KindImage:
		return p.Image
	default:
		return p.Rect
	}
}
