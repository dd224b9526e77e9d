package renderer2d

import (
	"math"

	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/text"
	"github.com/hubastard/grove/engine/ui"
)

// Style holds what a backend needs to turn draw commands into quads.
type Style struct {
	Palette colors.Palette
	Border  float32 // button outline thickness; 0 disables

	Font    *text.Atlas
	FontTex Texture // Font.Image uploaded by the backend

	// Image resolves an Image payload to a texture. A nil func or a false
	// result draws the palette's placeholder instead.
	Image func(payload any) (Texture, bool)
}

// DrawList draws one frame's commands in order. Panels are drawn where they
// were emitted, so they end up behind their children.
type DrawList struct {
	rd     *Renderer2D
	glyphs []text.Quad
}

func NewDrawList(rd *Renderer2D) *DrawList {
	return &DrawList{rd: rd, glyphs: make([]text.Quad, 0, 64)}
}

func (d *DrawList) Draw(cmds []ui.DrawCommand, st Style) {
	for i := range cmds {
		d.drawCommand(&cmds[i], st)
	}
}

func (d *DrawList) drawCommand(cmd *ui.DrawCommand, st Style) {
	b := cmd.Bounds
	if b.Empty() {
		return
	}
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)

	if cmd.Kind == ui.KindImage && st.Image != nil {
		if tex, ok := st.Image(cmd.Payload); ok {
			d.rd.DrawTexturedQuad(x, y, w, h, tex, colors.White)
			return
		}
	}
	d.rd.DrawQuad(x, y, w, h, st.Palette.Fill(*cmd))

	if cmd.Kind != ui.KindButton {
		return
	}
	d.rd.DrawOutline(x, y, w, h, st.Border, st.Palette.Border)
	if cmd.Text == "" || st.Font == nil || st.FontTex == nil {
		return
	}
	tx, ty := st.Font.Centered(cmd.Text, x, y, w, h)
	tx, ty = float32(math.Floor(float64(tx))), float32(math.Floor(float64(ty)))
	d.glyphs = st.Font.Layout(d.glyphs[:0], tx, ty, cmd.Text)
	for _, q := range d.glyphs {
		d.rd.DrawTexturedQuadUV(q.X, q.Y, q.W, q.H, st.FontTex, st.Palette.Text, q.U0, q.V0, q.U1, q.V1)
	}
}
