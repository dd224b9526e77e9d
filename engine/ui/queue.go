package ui

// Kind selects how a renderer draws a command.
type Kind uint8

const (
	KindRect Kind = iota
	KindButton
	KindPanel
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindButton:
		return "button"
	case KindPanel:
		return "panel"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// StateFlags carries the interaction state of a widget at the time it was emitted.
type StateFlags uint8

const (
	StateHovered StateFlags = 1 << iota
	StateActive
	StateClicked
)

// DrawCommand is one entry of the per-frame draw list.
type DrawCommand struct {
	ID      ID // 0 when anonymous
	Kind    Kind
	Bounds  Rect
	Payload any    // opaque to the core, e.g. an image handle
	Text    string // display text for buttons
	State   StateFlags
}

// DefaultMaxCommands is the draw queue capacity used when Options leaves it unset.
const DefaultMaxCommands = 1024

// Queue is a fixed-capacity, append-only list of draw commands, emptied every frame.
type Queue struct {
	cmds []DrawCommand
}

func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultMaxCommands
	}
	return &Queue{cmds: make([]DrawCommand, 0, capacity)}
}

// Reset truncates the queue. The backing array is reused.
func (q *Queue) Reset() {
	clear(q.cmds)
	q.cmds = q.cmds[:0]
}

// Push appends a zeroed command and returns it for in-place filling.
// The pointer stays valid for the whole frame because the queue never grows.
func (q *Queue) Push() *DrawCommand {
	n := len(q.cmds)
	if n == cap(q.cmds) {
		fatal("queue push", "draw queue", cap(q.cmds), ErrCapacity)
	}
	q.cmds = q.cmds[:n+1]
	return &q.cmds[n]
}

// At returns the command at index i so that it can be retargeted.
func (q *Queue) At(i int) *DrawCommand { return &q.cmds[i] }

func (q *Queue) Len() int { return len(q.cmds) }
func (q *Queue) Cap() int { return cap(q.cmds) }

// Commands returns the frame's commands in emission order. Read-only for renderers.
func (q *Queue) Commands() []DrawCommand { return q.cmds }
