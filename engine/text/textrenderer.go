package text

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Quad is one glyph placed in screen pixels (origin top-left, y down).
type Quad struct {
	X, Y, W, H     float32
	U0, V0, U1, V1 float32
	Src            image.Rectangle // glyph rect in Atlas.Image
}

func (a *Atlas) LineHeight() float32 { return a.Ascent - a.Descent + a.LineGap }

// Layout appends the glyph quads of s with its top-left at (x,y).
// Runes missing from the atlas advance like a space.
func (a *Atlas) Layout(dst []Quad, x, y float32, s string) []Quad {
	penX := x
	baseY := y + a.Ascent
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += a.LineHeight()
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			penX += a.Glyphs[' '].Advance
			prev = r
			continue
		}
		penX += a.kern(prev, r)
		if g.W > 0 && g.H > 0 {
			dst = append(dst, Quad{
				X: penX + g.BearingX, Y: baseY - g.BearingY,
				W: float32(g.W), H: float32(g.H),
				U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
				Src: image.Rect(g.X, g.Y, g.X+g.W, g.Y+g.H),
			})
		}
		penX += g.Advance
		prev = r
	}
	return dst
}

// Measure returns the width of the longest line and the total height of s.
func (a *Atlas) Measure(s string) (width, height float32) {
	var lineW float32
	prev := rune(-1)
	height = a.LineHeight()
	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += a.LineHeight()
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			lineW += a.Glyphs[' '].Advance
			prev = r
			continue
		}
		lineW += a.kern(prev, r) + g.Advance
		prev = r
	}
	return max(width, lineW), height
}

// Centered returns the top-left at which s sits centered inside the box.
func (a *Atlas) Centered(s string, x, y, w, h float32) (float32, float32) {
	tw, th := a.Measure(s)
	return x + (w-tw)/2, y + (h-th)/2
}

func (a *Atlas) kern(prev, r rune) float32 {
	if prev < 0 || a.Face == nil {
		return 0
	}
	return fixedToF(a.Face.Kern(prev, r))
}

func fixedToF(v fixed.Int26_6) float32 { return float32(v) / 64 }
