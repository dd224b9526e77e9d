package scene

// PixelCamera2D maps window pixels (origin top-left, y down) to clip space,
// so UI rectangles can be submitted in the same units the pointer reports.
// X/Y scroll the view, Zoom scales it around the top-left corner.
type PixelCamera2D struct {
	Width, Height float32
	X, Y          float32
	Zoom          float32 // 1 = no zoom
	vp            [16]float32
	dirty         bool
}

func NewPixelCamera2D(width, height int) *PixelCamera2D {
	c := &PixelCamera2D{Zoom: 1}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *PixelCamera2D) SetViewportPixels(w, h int) {
	c.Width, c.Height = float32(w), float32(h)
	c.dirty = true
}

func (c *PixelCamera2D) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }

func (c *PixelCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

func (c *PixelCamera2D) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *PixelCamera2D) Recalculate() {
	z := c.Zoom
	proj := ortho(0, c.Width/z, c.Height/z, 0, -1, 1)
	c.vp = mul(proj, translate(-c.X, -c.Y, 0))
	c.dirty = false
}

// Project returns the clip-space position of a pixel coordinate.
func (c *PixelCamera2D) Project(x, y float32) (float32, float32) {
	m := c.VP()
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i+4*j] = a[0+4*j]*b[i+0] + a[1+4*j]*b[i+4] + a[2+4*j]*b[i+8] + a[3+4*j]*b[i+12]
		}
	}
	return out
}
