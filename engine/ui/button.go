package ui

// Button emits a button of the default size and reports whether it was
// clicked this frame. A label "text##key" shows text and is identified by key.
func (c *Ctx) Button(label string) bool {
	return c.SizedButton(label, c.buttonSize.X, c.buttonSize.Y)
}

// SizedButton is Button with an explicit size.
func (c *Ctx) SizedButton(label string, w, h int) bool {
	text, key := splitLabel(label)
	id := MakeID(key)
	c.noteID(id, key)

	l := c.layout.Current()
	r := Rect{X: l.Pos.X, Y: l.Pos.Y, W: w, H: h}

	cmd := c.queue.Push()
	cmd.ID = id
	cmd.Kind = KindButton
	cmd.Bounds = r
	cmd.Text = text

	clicked := c.interact(id, r)
	cmd.State = c.stateOf(id, clicked)

	l.Advance(r)
	return clicked
}
