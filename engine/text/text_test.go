package text

import (
	"testing"
)

func TestDefaultAtlasMetrics(t *testing.T) {
	a := Default()
	defer a.Close()
	g, ok := a.Glyphs['A']
	if !ok {
		t.Fatal("missing glyph A")
	}
	if g.Advance != 7 {
		t.Fatalf("advance = %v, want 7", g.Advance)
	}
	if g.W <= 0 || g.H <= 0 || g.U1 <= g.U0 || g.V1 <= g.V0 {
		t.Fatalf("glyph = %+v", g)
	}
	if a.LineHeight() <= 0 {
		t.Fatalf("line height = %v", a.LineHeight())
	}
	// The glyph rect must contain drawn coverage.
	var covered bool
	for y := g.Y; y < g.Y+g.H && !covered; y++ {
		for x := g.X; x < g.X+g.W; x++ {
			if a.Image.RGBAAt(x, y).A != 0 {
				covered = true
				break
			}
		}
	}
	if !covered {
		t.Fatal("glyph A was not rasterized")
	}
}

func TestMeasure(t *testing.T) {
	a := Default()
	w, h := a.Measure("abc")
	if w != 21 {
		t.Fatalf("width = %v, want 21", w)
	}
	w2, h2 := a.Measure("abcd\nab")
	if w2 != 28 || h2 != 2*h {
		t.Fatalf("multi-line = %v x %v", w2, h2)
	}
	if w, _ := a.Measure(""); w != 0 {
		t.Fatalf("empty width = %v", w)
	}
}

func TestLayoutSkipsBlanks(t *testing.T) {
	a := Default()
	qs := a.Layout(nil, 10, 20, "a b")
	if len(qs) != 2 {
		t.Fatalf("quads = %d, want 2", len(qs))
	}
	if qs[1].X-qs[0].X != 14 {
		t.Fatalf("pen advance = %v, want 14", qs[1].X-qs[0].X)
	}
	for _, q := range qs {
		if q.Y < 20 || q.Src.Dx() != int(q.W) {
			t.Fatalf("quad = %+v", q)
		}
	}
}

func TestCentered(t *testing.T) {
	a := Default()
	tw, th := a.Measure("OK")
	x, y := a.Centered("OK", 0, 0, 100, 40)
	if x != (100-tw)/2 || y != (40-th)/2 {
		t.Fatalf("Centered = (%v,%v)", x, y)
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	a, err := Load("", 16)
	if err != nil || a == nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Load("/nonexistent/font.ttf", 16); err == nil {
		t.Fatal("missing font file should fail")
	}
}
