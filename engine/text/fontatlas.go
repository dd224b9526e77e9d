package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // distance from baseline to glyph top
	X, Y     int     // top-left in the atlas image
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas is a white-on-transparent glyph sheet plus metrics. Backends upload
// Image once and draw glyph sub-rects tinted with the text color.
type Atlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Image                    *image.RGBA
	Face                     font.Face
	closeFace                func()
}

func (a *Atlas) Close() {
	if a != nil && a.closeFace != nil {
		a.closeFace()
		a.closeFace = nil
	}
}

// Default builds an atlas from the built-in 7x13 bitmap face.
func Default() *Atlas {
	a, err := NewAtlas(basicfont.Face7x13, 13)
	if err != nil {
		// The built-in face always fits in the first atlas size.
		panic(err)
	}
	return a
}

// LoadTTF parses a TrueType/OpenType file and builds its atlas at sizePx.
func LoadTTF(path string, sizePx float32) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	a, err := NewAtlas(face, sizePx)
	if err != nil {
		_ = face.Close()
		return nil, err
	}
	a.closeFace = func() { _ = face.Close() }
	return a, nil
}

// Load picks LoadTTF when path is set and the built-in face otherwise.
func Load(path string, sizePx float32) (*Atlas, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadTTF(path, sizePx)
}

const (
	atlasPadding = 2
	atlasMinSize = 128
	atlasMaxSize = 4096
)

// NewAtlas rasterizes runes 32..255 of face into a shelf-packed atlas.
func NewAtlas(face font.Face, sizePx float32) (*Atlas, error) {
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent
	if lineGap < 0 {
		lineGap = 0
	}

	type meas struct {
		r          rune
		w, h       int
		adv        float32
		minX, minY int
	}
	measured := make([]meas, 0, 224)
	for r := rune(32); r <= 255; r++ {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
		measured = append(measured, meas{
			r:    r,
			w:    b.Max.X.Ceil() - minX,
			h:    b.Max.Y.Ceil() - minY,
			adv:  float32(adv.Round()),
			minX: minX,
			minY: minY,
		})
	}

	// Shelf packer: grow the square atlas until every glyph fits.
	size := atlasMinSize
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measured))
		for _, g := range measured {
			if g.w <= 0 || g.h <= 0 {
				continue
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if g.w+2*atlasPadding > size || y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > atlasMaxSize {
			return nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measured))
	for _, g := range measured {
		gl := Glyph{
			Rune:     g.r,
			Advance:  g.adv,
			BearingX: float32(g.minX),
			BearingY: float32(-g.minY),
		}
		p, ok := pos[g.r]
		if ok {
			clip := image.Rect(p.X, p.Y, p.X+g.w, p.Y+g.h)
			drawer.Dst = clipped{dst, clip}
			drawer.Dot = fixed.P(p.X-g.minX, p.Y-g.minY)
			drawer.DrawString(string(g.r))
			// Bitmap faces report a full cell even for blanks.
			ok = hasCoverage(dst, clip)
		}
		if ok {
			gl.X, gl.Y, gl.W, gl.H = p.X, p.Y, g.w, g.h
			gl.U0 = float32(p.X) / float32(size)
			gl.V0 = float32(p.Y) / float32(size)
			gl.U1 = float32(p.X+g.w) / float32(size)
			gl.V1 = float32(p.Y+g.h) / float32(size)
		}
		glyphs[g.r] = gl
	}

	return &Atlas{
		SizePx:  sizePx,
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
		Glyphs:  glyphs,
		Image:   dst,
		Face:    face,
	}, nil
}

func hasCoverage(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] != 0 {
				return true
			}
		}
	}
	return false
}

// clipped keeps a glyph from bleeding into its neighbours.
type clipped struct {
	*image.RGBA
	r image.Rectangle
}

func (c clipped) Bounds() image.Rectangle { return c.r }

var _ draw.Image = clipped{}
