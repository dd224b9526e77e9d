package ui

import "testing"

func TestRectFlowsVerticallyThenHorizontally(t *testing.T) {
	c := newTestCtx()
	cmds := frame(t, c, Input{}, func(c *Ctx) {
		c.Rect(100, 50)
		c.Rect(100, 50)
		c.SetDirection(Horizontal)
		c.Rect(200, 50)
		c.Rect(200, 50)
	})

	want := []Rect{
		R(0, 0, 100, 50),
		R(0, 50, 100, 50),
		R(0, 100, 200, 50),
		R(200, 100, 200, 50),
	}
	if len(cmds) != len(want) {
		t.Fatalf("len = %d, want %d", len(cmds), len(want))
	}
	for i, r := range want {
		if cmds[i].Kind != KindRect || cmds[i].Bounds != r || cmds[i].ID != 0 {
			t.Errorf("cmd %d = %+v, want rect %+v", i, cmds[i], r)
		}
	}
}

func TestImagePassesPayloadThrough(t *testing.T) {
	type texture struct{ name string }
	tex := &texture{"player"}
	c := newTestCtx()
	cmds := frame(t, c, Input{}, func(c *Ctx) {
		c.Image(tex, 32, 32)
	})
	if cmds[0].Kind != KindImage || cmds[0].Payload != tex || cmds[0].Bounds != R(0, 0, 32, 32) {
		t.Fatalf("image command = %+v", cmds[0])
	}
}

func TestPanelContainsChildren(t *testing.T) {
	c := New(Options{Origin: Pt(10, 10), Padding: Pt(8, 6), Margin: Pt(4, 4)})
	var panel DrawCommand
	var children []Rect
	cmds := frame(t, c, Input{}, func(c *Ctx) {
		c.BeginPanel()
		c.Rect(100, 20)
		c.Rect(60, 30)
		c.SetDirection(Horizontal)
		c.Rect(80, 10)
		c.Rect(80, 10)
		c.EndPanel()
	})
	panel = cmds[0]
	for _, cmd := range cmds[1:] {
		children = append(children, cmd.Bounds)
	}

	if panel.Kind != KindPanel {
		t.Fatalf("first command = %+v, want panel placeholder", panel)
	}
	box := children[0]
	for _, r := range children[1:] {
		box = box.Grow(r)
	}
	if panel.Bounds.W < box.W+8 || panel.Bounds.H < box.H+6 {
		t.Errorf("panel %+v too small for children %+v", panel.Bounds, box)
	}
	for _, r := range children {
		if !panel.Bounds.Covers(r) {
			t.Errorf("panel %+v does not enclose %+v", panel.Bounds, r)
		}
	}
	// children start inside the padding
	if children[0].X != 18 || children[0].Y != 16 {
		t.Errorf("first child at %+v, want padded origin 18,16", children[0])
	}
}

func TestPanelAdvancesParentWithFinalRect(t *testing.T) {
	c := newTestCtx()
	cmds := frame(t, c, Input{}, func(c *Ctx) {
		c.SetPadding(5, 5)
		c.BeginPanel()
		c.Rect(50, 50)
		c.EndPanel()
		c.Rect(10, 10)
	})
	panel := cmds[0]
	if panel.Bounds != R(0, 0, 60, 60) {
		t.Fatalf("panel = %+v, want 0,0,60,60", panel.Bounds)
	}
	after := cmds[2]
	if after.Bounds.Y != panel.Bounds.Bottom() {
		t.Fatalf("rect after panel at y=%d, want %d", after.Bounds.Y, panel.Bounds.Bottom())
	}
}

func TestNestedPanelsRestoreParentLayout(t *testing.T) {
	c := newTestCtx()
	frame(t, c, Input{}, func(c *Ctx) {
		c.SetDirection(Horizontal)
		c.BeginPanel()
		c.SetDirection(Vertical)
		c.BeginPanel()
		c.Rect(10, 10)
		c.EndPanel()
		c.EndPanel()
		if c.Layout().Direction != Horizontal {
			t.Errorf("root direction changed by child scope")
		}
		if c.Depth() != 1 {
			t.Errorf("Depth = %d, want 1", c.Depth())
		}
	})
	if got := c.Stats().PeakDepth; got != 3 {
		t.Fatalf("PeakDepth = %d, want 3", got)
	}
}

func TestEmptyPanelIsPaddingSized(t *testing.T) {
	c := New(Options{Padding: Pt(4, 3)})
	cmds := frame(t, c, Input{}, func(c *Ctx) {
		c.BeginPanel()
		c.EndPanel()
	})
	if cmds[0].Bounds != R(0, 0, 8, 6) {
		t.Fatalf("empty panel = %+v, want 0,0,8,6", cmds[0].Bounds)
	}
}

func TestUnbalancedEndsAreFatal(t *testing.T) {
	tests := []struct {
		name  string
		build func(c *Ctx)
	}{
		{"end panel at root", func(c *Ctx) { c.EndPanel() }},
		{"end align at root", func(c *Ctx) { c.EndAlign() }},
		{"end panel inside align", func(c *Ctx) { c.BeginAlign(AlignLeft, "g"); c.EndPanel() }},
		{"end align inside panel", func(c *Ctx) { c.BeginPanel(); c.EndAlign() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCtx()
			expectViolation(t, ErrUnbalanced, func() { tt.build(c) })
		})
	}
}
