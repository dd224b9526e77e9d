package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/text"
	"github.com/hubastard/grove/engine/ui"
)

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -3 && d <= 3
}

func pixel(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func assertColor(t *testing.T, img image.Image, x, y int, want colors.Color) {
	t.Helper()
	got := pixel(t, img, x, y)
	w := want.RGBA8()
	if !near(got.R, w.R) || !near(got.G, w.G) || !near(got.B, w.B) {
		t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, w)
	}
}

func TestRenderFillsCommands(t *testing.T) {
	r := New(64, 48, nil)
	defer r.Shutdown()
	pal := colors.DefaultPalette()

	r.Clear(0, 0, 0, 1)
	err := r.Render([]ui.DrawCommand{
		{Kind: ui.KindPanel, Bounds: ui.R(0, 0, 64, 48)},
		{Kind: ui.KindRect, Bounds: ui.R(4, 4, 10, 10)},
		{Kind: ui.KindButton, Bounds: ui.R(20, 4, 30, 20), State: ui.StateHovered},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := r.Image()
	assertColor(t, img, 60, 40, pal.Panel)
	assertColor(t, img, 8, 8, pal.Rect)
	assertColor(t, img, 35, 14, pal.ButtonHover)
}

func TestRenderImagePayload(t *testing.T) {
	r := New(16, 16, nil)
	defer r.Shutdown()
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []byte{0, 255, 0, 255})
	}
	r.Clear(0, 0, 0, 1)
	if err := r.Render([]ui.DrawCommand{
		{Kind: ui.KindImage, Bounds: ui.R(0, 0, 8, 8), Payload: src},
		{Kind: ui.KindImage, Bounds: ui.R(8, 8, 8, 8), Payload: "not an image"},
	}); err != nil {
		t.Fatal(err)
	}
	assertColor(t, r.Image(), 4, 4, colors.Green)
	assertColor(t, r.Image(), 12, 12, colors.DefaultPalette().Image)
	if len(r.images) != 1 {
		t.Fatalf("cached images = %d", len(r.images))
	}
}

func TestButtonTextDrawsGlyphs(t *testing.T) {
	font := text.Default()
	r := New(100, 30, font)
	defer r.Shutdown()
	r.Clear(0, 0, 0, 1)
	if err := r.Render([]ui.DrawCommand{
		{Kind: ui.KindButton, Bounds: ui.R(0, 0, 100, 30), Text: "HHHH"},
	}); err != nil {
		t.Fatal(err)
	}
	img := r.Image()
	bg := colors.DefaultPalette().Button.RGBA8()
	textPixels := 0
	for y := 2; y < 28; y++ {
		for x := 2; x < 98; x++ {
			if p := pixel(t, img, x, y); !near(p.R, bg.R) || !near(p.G, bg.G) {
				textPixels++
			}
		}
	}
	if textPixels == 0 {
		t.Fatal("no text pixels drawn")
	}
}

func TestSnapshotPNG(t *testing.T) {
	r := New(10, 10, nil)
	defer r.Shutdown()
	r.Clear(1, 0, 0, 1)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 10 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	assertColor(t, img, 5, 5, colors.Red)

	path := filepath.Join(t.TempDir(), "snap.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatal(err)
	}
}

func TestResize(t *testing.T) {
	r := New(10, 10, nil)
	defer r.Shutdown()
	r.Resize(20, 5)
	if b := r.Image().Bounds(); b.Dx() != 20 || b.Dy() != 5 {
		t.Fatalf("bounds after resize = %v", b)
	}
}
