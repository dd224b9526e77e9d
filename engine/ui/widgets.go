package ui

// ===== Rect / Image =====

// Rect emits a plain rectangle of the given size at the cursor.
func (c *Ctx) Rect(w, h int) {
	c.emit(KindRect, w, h, nil)
}

// Image emits an image of the given size. handle is passed to the renderer untouched.
func (c *Ctx) Image(handle any, w, h int) {
	c.emit(KindImage, w, h, handle)
}

func (c *Ctx) emit(kind Kind, w, h int, payload any) {
	l := c.layout.Current()
	r := Rect{X: l.Pos.X, Y: l.Pos.Y, W: w, H: h}
	cmd := c.queue.Push()
	cmd.Kind = kind
	cmd.Bounds = r
	cmd.Payload = payload
	l.Advance(r)
}

// ===== Panel =====

// BeginPanel opens a panel scope. Its background command is emitted now and
// sized by EndPanel once the children are known.
func (c *Ctx) BeginPanel() {
	origin := c.layout.Current().Pos
	idx := c.queue.Len()
	cmd := c.queue.Push()
	cmd.Kind = KindPanel
	cmd.Bounds = Rect{X: origin.X, Y: origin.Y}

	l := c.push()
	l.scope = scopePanel
	l.alignID = 0
	l.QueueIndex = idx
	l.Bounds = Rect{X: origin.X, Y: origin.Y, W: l.Padding.X, H: l.Padding.Y}
	l.Pos = origin.Add(l.Padding)
}

// EndPanel closes the innermost panel, patches its background to enclose the
// children plus padding and advances the parent past it.
func (c *Ctx) EndPanel() {
	if c.layout.Current().scope != scopePanel {
		fatal("end panel", "layout stack", 0, ErrUnbalanced)
	}
	l := c.layout.Pop()
	r := Rect{
		X: l.Bounds.X,
		Y: l.Bounds.Y,
		W: l.Bounds.W + l.Padding.X,
		H: l.Bounds.H + l.Padding.Y,
	}
	c.queue.At(l.QueueIndex).Bounds = r
	c.layout.Current().Advance(r)
}
