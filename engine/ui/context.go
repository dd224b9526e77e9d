package ui

import "log/slog"

// Options configures a Ctx. Zero fields fall back to the package defaults.
type Options struct {
	MaxCommands int // draw queue capacity
	MaxDepth    int // layout stack capacity
	StorageSize int // persistent table slots

	ButtonSize Point // size of Button; defaults to 120x32
	Origin     Point // root cursor at the start of every frame
	Margin     Point // root margin
	Padding    Point // root padding

	// Debug enables per-frame duplicate identifier detection.
	Debug  bool
	Logger *slog.Logger
}

var DefaultButtonSize = Point{X: 120, Y: 32}

// Ctx owns all UI state: the draw queue and layout stack rebuilt every frame,
// plus storage and focus that survive between frames. A Ctx is not safe for
// concurrent use; the frame driver owns it.
type Ctx struct {
	queue  *Queue
	layout *LayoutStack
	store  *Storage

	root       Layout
	buttonSize Point

	in          Input
	hoverID     ID
	activeID    ID
	hoverGreedy bool
	hoverSeen   bool // the hovered widget was emitted this frame
	activeSeen  bool

	debug bool
	seen  map[ID]string
	dups  int

	frame     uint64
	peakDepth int

	log *slog.Logger
}

func New(opts Options) *Ctx {
	c := &Ctx{
		queue:      NewQueue(opts.MaxCommands),
		layout:     NewLayoutStack(opts.MaxDepth),
		store:      NewStorage(opts.StorageSize),
		buttonSize: opts.ButtonSize,
		debug:      opts.Debug,
		log:        opts.Logger,
		root: Layout{
			QueueIndex: -1,
			Pos:        opts.Origin,
			Direction:  Vertical,
			Bounds:     Rect{X: opts.Origin.X, Y: opts.Origin.Y},
			Margin:     opts.Margin,
			Padding:    opts.Padding,
		},
	}
	if c.buttonSize == (Point{}) {
		c.buttonSize = DefaultButtonSize
	}
	if c.log == nil {
		c.log = newNopLogger()
	}
	if c.debug {
		c.seen = make(map[ID]string, 64)
	}
	c.ResetFrame()
	return c
}

// ResetFrame empties the draw queue and leaves only the root layout context.
// Call it once per frame before any widget.
func (c *Ctx) ResetFrame() {
	c.queue.Reset()
	c.layout.Reset(c.root)
	c.peakDepth = 1
	c.dups = 0
	c.hoverSeen, c.activeSeen = false, false
	if c.seen != nil {
		clear(c.seen)
	}
	c.frame++
}

// SetInput stores the frame's pointer snapshot used by every hit-test.
func (c *Ctx) SetInput(in Input) { c.in = in }

// EndFrame checks that every scope opened this frame was closed and drops
// hover or capture held by a widget that was not emitted this frame.
func (c *Ctx) EndFrame() {
	if d := c.layout.Depth(); d != 1 {
		fatal("end frame", "layout stack", 0, ErrUnbalanced)
	}
	if !c.hoverSeen {
		c.hoverID = 0
	}
	if !c.activeSeen {
		c.activeID = 0
	}
	c.log.Debug("ui frame",
		slog.Uint64("frame", c.frame),
		slog.Int("commands", c.queue.Len()),
		slog.Int("depth", c.peakDepth),
		slog.Int("storage", c.store.Len()))
}

// DrawCommands returns this frame's draw list, valid until the next ResetFrame.
func (c *Ctx) DrawCommands() []DrawCommand { return c.queue.Commands() }

// Frame runs one complete frame: reset, input, build, balance check.
// A core violation raised by build is returned as an error after the frame
// state has been reset; any other panic propagates.
func (c *Ctx) Frame(in Input, build func(*Ctx)) (cmds []DrawCommand, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*Violation)
			if !ok {
				panic(r)
			}
			c.log.Error("ui frame aborted", slog.String("err", v.Error()))
			c.ResetFrame()
			cmds, err = nil, v
		}
	}()

	c.ResetFrame()
	c.SetInput(in)
	build(c)
	c.EndFrame()
	return c.DrawCommands(), nil
}

// ===== Scope setters =====

func (c *Ctx) SetDirection(d Direction) { c.layout.Current().Direction = d }
func (c *Ctx) SetMargin(x, y int)       { c.layout.Current().Margin = Point{x, y} }
func (c *Ctx) SetPadding(x, y int)      { c.layout.Current().Padding = Point{x, y} }
func (c *Ctx) SetCursor(x, y int)       { c.layout.Current().Pos = Point{x, y} }

// SetHoverGreedy lets the following widgets take hover from one emitted earlier.
func (c *Ctx) SetHoverGreedy(greedy bool) { c.hoverGreedy = greedy }

// Layout returns the current layout context.
func (c *Ctx) Layout() *Layout { return c.layout.Current() }

// ===== Introspection =====

func (c *Ctx) HoverID() ID         { return c.hoverID }
func (c *Ctx) ActiveID() ID        { return c.activeID }
func (c *Ctx) Depth() int          { return c.layout.Depth() }
func (c *Ctx) Storage() *Storage   { return c.store }
func (c *Ctx) Queue() *Queue       { return c.queue }
func (c *Ctx) Input() Input        { return c.in }
func (c *Ctx) ButtonSize() Point   { return c.buttonSize }
func (c *Ctx) FrameNumber() uint64 { return c.frame }

// Stats summarises the frame built so far.
type Stats struct {
	Frame          uint64
	Commands       int
	PeakDepth      int
	StorageEntries int
	DuplicateIDs   int
}

func (c *Ctx) Stats() Stats {
	return Stats{
		Frame:          c.frame,
		Commands:       c.queue.Len(),
		PeakDepth:      c.peakDepth,
		StorageEntries: c.store.Len(),
		DuplicateIDs:   c.dups,
	}
}

func (c *Ctx) push() *Layout {
	l := c.layout.Push()
	if d := c.layout.Depth(); d > c.peakDepth {
		c.peakDepth = d
	}
	return l
}
