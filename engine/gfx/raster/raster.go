// Package raster renders UI draw lists on the CPU with gg, for snapshots
// and headless runs.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/text"
	"github.com/hubastard/grove/engine/ui"
)

// Renderer implements core.Renderer on an offscreen gg context.
type Renderer struct {
	dc      *gg.Context
	palette colors.Palette
	border  float64

	font   *text.Atlas
	glyphs *gg.ImageBuf // atlas tinted with the text color
	quads  []text.Quad

	images map[image.Image]*gg.ImageBuf
}

func New(w, h int, font *text.Atlas) *Renderer {
	r := &Renderer{
		dc:      gg.NewContext(w, h),
		palette: colors.DefaultPalette(),
		border:  1,
		font:    font,
		images:  make(map[image.Image]*gg.ImageBuf),
	}
	if font != nil {
		r.glyphs = gg.ImageBufFromImage(tint(font.Image, r.palette.Text))
	}
	return r
}

func (r *Renderer) Resize(w, h int) {
	if w == r.dc.Width() && h == r.dc.Height() {
		return
	}
	if err := r.dc.Resize(w, h); err != nil {
		// Resize only fails on a closed context; start over.
		_ = r.dc.Close()
		r.dc = gg.NewContext(w, h)
	}
}

func (r *Renderer) Clear(red, green, blue, alpha float32) {
	r.dc.ClearWithColor(gg.RGBA2(float64(red), float64(green), float64(blue), float64(alpha)))
}

func (r *Renderer) Render(cmds []ui.DrawCommand) error {
	var errs []error
	for i := range cmds {
		if err := r.draw(&cmds[i]); err != nil {
			errs = append(errs, fmt.Errorf("command %d (%v): %w", i, cmds[i].Kind, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Renderer) draw(cmd *ui.DrawCommand) error {
	b := cmd.Bounds
	if b.Empty() {
		return nil
	}
	x, y, w, h := float64(b.X), float64(b.Y), float64(b.W), float64(b.H)

	if cmd.Kind == ui.KindImage {
		if img, ok := cmd.Payload.(image.Image); ok {
			r.dc.DrawImageEx(r.imageBuf(img), gg.DrawImageOptions{
				X: x, Y: y, DstWidth: w, DstHeight: h,
				Interpolation: gg.InterpBilinear,
				Opacity:       1,
			})
			return nil
		}
	}

	if err := r.fillRect(x, y, w, h, r.palette.Fill(*cmd)); err != nil {
		return err
	}
	if cmd.Kind != ui.KindButton {
		return nil
	}
	if r.border > 0 {
		c := r.palette.Border
		r.dc.SetRGBA(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
		r.dc.SetLineWidth(r.border)
		half := r.border / 2
		r.dc.DrawRectangle(x+half, y+half, w-r.border, h-r.border)
		if err := r.dc.Stroke(); err != nil {
			return err
		}
	}
	r.drawText(cmd.Text, float32(x), float32(y), float32(w), float32(h))
	return nil
}

func (r *Renderer) fillRect(x, y, w, h float64, c colors.Color) error {
	r.dc.SetRGBA(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
	r.dc.DrawRectangle(x, y, w, h)
	return r.dc.Fill()
}

func (r *Renderer) drawText(s string, x, y, w, h float32) {
	if s == "" || r.font == nil {
		return
	}
	tx, ty := r.font.Centered(s, x, y, w, h)
	r.quads = r.font.Layout(r.quads[:0], float32(int(tx)), float32(int(ty)), s)
	for i := range r.quads {
		q := &r.quads[i]
		src := q.Src
		r.dc.DrawImageEx(r.glyphs, gg.DrawImageOptions{
			X: float64(q.X), Y: float64(q.Y),
			DstWidth: float64(q.W), DstHeight: float64(q.H),
			SrcRect:       &src,
			Interpolation: gg.InterpNearest,
			Opacity:       1,
		})
	}
}

func (r *Renderer) imageBuf(img image.Image) *gg.ImageBuf {
	if buf, ok := r.images[img]; ok {
		return buf
	}
	buf := gg.ImageBufFromImage(img)
	r.images[img] = buf
	return buf
}

func (r *Renderer) Shutdown() {
	clear(r.images)
	_ = r.dc.Close()
}

// Image returns the rendered frame.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %q: %w", path, err)
	}
	return nil
}

func (r *Renderer) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// tint multiplies a white coverage atlas by c.
func tint(src *image.RGBA, c colors.Color) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	rgb := c.RGBA8()
	for i := 0; i < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		if a == 0 {
			continue
		}
		out.Pix[i+0] = rgb.R
		out.Pix[i+1] = rgb.G
		out.Pix[i+2] = rgb.B
		out.Pix[i+3] = uint8(uint16(a) * uint16(rgb.A) / 255)
	}
	return out
}
