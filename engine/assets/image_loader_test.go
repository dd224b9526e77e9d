package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPNGConvertsToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(2, 1, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "x.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 || img.Stride != 12 {
		t.Fatalf("bounds %v stride %d", img.Bounds(), img.Stride)
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestLoadPNGMissing(t *testing.T) {
	if _, err := LoadPNG(filepath.Join(t.TempDir(), "none.png")); err == nil {
		t.Fatal("expected error")
	}
}

func TestToRGBASubImage(t *testing.T) {
	base := Checker(4, 4, 1, [4]uint8{0, 0, 0, 255}, [4]uint8{255, 255, 255, 255})
	sub := base.SubImage(image.Rect(1, 1, 3, 3))
	got := ToRGBA(sub)
	if got.Bounds().Min != (image.Point{}) || got.Bounds().Dx() != 2 {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if got.RGBAAt(0, 0) != base.RGBAAt(1, 1) {
		t.Fatal("sub-image origin not preserved")
	}
	if ToRGBA(base) != base {
		t.Fatal("tight RGBA should not be copied")
	}
}
