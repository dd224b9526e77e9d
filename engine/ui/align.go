package ui

// BeginAlign opens a group whose horizontal position is corrected so that it
// hugs one side of the parent's bounds.
//
// The parent's extent is only known after the group has been laid out, so the
// correction is measured at EndAlign and applied from the next frame on. The
// first frame draws the group unshifted. Once non-zero the correction is kept
// for the lifetime of the Ctx, even if the content later changes size.
//
// The parent is measured as laid out so far, so a Right or Center group that
// comes before wider siblings sees a narrower parent. The correction never
// moves the group left of the parent's origin, which keeps it inside an
// enclosing panel.
func (c *Ctx) BeginAlign(side AlignSide, label string) {
	id := MakeID(label)
	c.noteID(id, label)

	e := c.store.Get(id)
	info, ok := e.Payload.(*AlignInfo)
	if !ok {
		info = &AlignInfo{}
		e.Payload = info
	}
	info.Side = side
	info.QueueStart = c.queue.Len()

	l := c.push()
	l.scope = scopeAlign
	l.alignID = id
	l.QueueIndex = -1
	l.Pos.X += info.Offset
	l.Bounds = Rect{X: l.Pos.X, Y: l.Pos.Y}
}

// EndAlign closes the innermost align group.
func (c *Ctx) EndAlign() {
	if c.layout.Current().scope != scopeAlign {
		fatal("end align", "layout stack", 0, ErrUnbalanced)
	}
	l := c.layout.Pop()
	e := c.store.Get(l.alignID)
	info := e.Payload.(*AlignInfo)
	info.Bounds = l.Bounds

	parent := c.layout.Current()
	if info.Offset == 0 {
		info.Offset = max(alignOffset(info.Side, parent.Bounds, l.Bounds), parent.Bounds.X-l.Bounds.X)
	}
	parent.Advance(l.Bounds)
}

// AlignInfo returns the stored state of the align group named label.
func (c *Ctx) AlignInfo(label string) (AlignInfo, bool) {
	e, ok := c.store.Lookup(MakeID(label))
	if !ok {
		return AlignInfo{}, false
	}
	info, ok := e.Payload.(*AlignInfo)
	if !ok {
		return AlignInfo{}, false
	}
	return *info, true
}

func alignOffset(side AlignSide, parent, group Rect) int {
	switch side {
	case AlignRight:
		return parent.Right() - group.Right()
	case AlignCenter:
		return parent.CenterX() - group.CenterX()
	default:
		return parent.X - group.X
	}
}
