// Package term runs the UI in a terminal: one layout unit is one cell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/ui"
	"golang.org/x/text/width"
)

// CellSetter is the part of tcell.Screen the renderer draws through.
type CellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Renderer implements core.Renderer on terminal cells.
type Renderer struct {
	scr     CellSetter
	palette colors.Palette
	clear   tcell.Style
}

func NewRenderer(scr CellSetter) *Renderer {
	return &Renderer{
		scr:     scr,
		palette: colors.DefaultPalette(),
		clear:   tcell.StyleDefault,
	}
}

func (r *Renderer) Resize(int, int) {}
func (r *Renderer) Shutdown()       {}

func (r *Renderer) Clear(red, green, blue, alpha float32) {
	r.clear = tcell.StyleDefault.Background(toTcell(colors.Color{red, green, blue, alpha}))
	w, h := r.scr.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.scr.SetContent(x, y, ' ', nil, r.clear)
		}
	}
}

func (r *Renderer) Render(cmds []ui.DrawCommand) error {
	for i := range cmds {
		r.draw(&cmds[i])
	}
	return nil
}

func (r *Renderer) draw(cmd *ui.DrawCommand) {
	fill := r.palette.Fill(*cmd)
	st := tcell.StyleDefault.Background(toTcell(fill)).Foreground(toTcell(r.palette.Text))
	ch := ' '
	if cmd.Kind == ui.KindImage {
		// Images have no cell rendition; show a shaded block.
		ch = '▒'
	}
	r.fill(cmd.Bounds, ch, st)
	if cmd.Kind == ui.KindButton && cmd.Text != "" {
		if cmd.State&ui.StateActive != 0 {
			st = st.Bold(true)
		}
		r.label(cmd.Bounds, cmd.Text, st)
	}
}

func (r *Renderer) fill(b ui.Rect, ch rune, st tcell.Style) {
	sw, sh := r.scr.Size()
	x0, y0 := max(b.X, 0), max(b.Y, 0)
	x1, y1 := min(b.Right(), sw), min(b.Bottom(), sh)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.scr.SetContent(x, y, ch, nil, st)
		}
	}
}

// label centers s on the middle row of b, truncating at the right edge.
func (r *Renderer) label(b ui.Rect, s string, st tcell.Style) {
	if b.Empty() {
		return
	}
	tw := StringWidth(s)
	x := b.X + max((b.W-tw)/2, 0)
	y := b.Y + (b.H-1)/2
	sw, sh := r.scr.Size()
	if y < 0 || y >= sh {
		return
	}
	for _, ch := range s {
		cw := RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+cw > b.Right() || x+cw > sw {
			return
		}
		if x >= 0 {
			r.scr.SetContent(x, y, ch, nil, st)
		}
		x += cw
	}
}

// RuneWidth is the number of cells ch occupies: 2 for East Asian wide and
// fullwidth runes, 0 for control runes and 1 otherwise.
func RuneWidth(ch rune) int {
	if ch < 0x20 || ch == 0x7f {
		return 0
	}
	switch width.LookupRune(ch).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func StringWidth(s string) int {
	n := 0
	for _, ch := range s {
		n += RuneWidth(ch)
	}
	return n
}

func toTcell(c colors.Color) tcell.Color {
	rgb := c.RGBA8()
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
