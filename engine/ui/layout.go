package ui

// ===== Layout contexts =====

type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

type scopeKind uint8

const (
	scopeRoot scopeKind = iota
	scopePanel
	scopeAlign
)

// Layout is the cursor state of one nested scope.
type Layout struct {
	QueueIndex int   // placeholder command of the owning panel, -1 otherwise
	Pos        Point // origin of the next widget
	Direction  Direction
	Bounds     Rect // covers every widget emitted in this scope
	Margin     Point
	Padding    Point

	scope   scopeKind
	alignID ID
}

// Advance moves the cursor past r and grows the bounds to cover it.
func (l *Layout) Advance(r Rect) {
	switch l.Direction {
	case Horizontal:
		l.Pos.X += r.W + l.Margin.X
	case Vertical:
		l.Pos.Y += r.H + l.Margin.Y
	}
	l.Bounds = l.Bounds.Grow(r)
}

// DefaultMaxDepth is the layout stack capacity used when Options leaves it unset.
const DefaultMaxDepth = 1024

// LayoutStack holds the nested layout contexts of the current frame.
// The root (index 0) is never popped.
type LayoutStack struct {
	frames []Layout
}

func NewLayoutStack(capacity int) *LayoutStack {
	if capacity <= 0 {
		capacity = DefaultMaxDepth
	}
	return &LayoutStack{frames: make([]Layout, 1, capacity)}
}

// Reset drops every scope and reinitialises the root to root.
func (s *LayoutStack) Reset(root Layout) {
	root.scope = scopeRoot
	root.QueueIndex = -1
	s.frames = s.frames[:1]
	s.frames[0] = root
}

// Push duplicates the current context, so children inherit position,
// direction, margin and padding.
func (s *LayoutStack) Push() *Layout {
	n := len(s.frames)
	if n == cap(s.frames) {
		fatal("layout push", "layout stack", cap(s.frames), ErrCapacity)
	}
	s.frames = append(s.frames, s.frames[n-1])
	return &s.frames[n]
}

// Pop discards the current context and returns a copy of it.
func (s *LayoutStack) Pop() Layout {
	n := len(s.frames)
	if n <= 1 {
		fatal("layout pop", "layout stack", 0, ErrUnbalanced)
	}
	top := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return top
}

func (s *LayoutStack) Current() *Layout { return &s.frames[len(s.frames)-1] }
func (s *LayoutStack) Depth() int       { return len(s.frames) }
