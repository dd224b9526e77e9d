package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity reports a fixed-size structure that ran out of room.
	ErrCapacity = errors.New("capacity exceeded")
	// ErrUnbalanced reports an end or pop without its matching begin or push.
	ErrUnbalanced = errors.New("unbalanced scope")
	// ErrInvalidID reports the reserved zero identifier used as a storage key.
	ErrInvalidID = errors.New("invalid identifier")
)

// Violation is a programmer error detected by the UI core. Core operations
// panic with a *Violation; Ctx.Frame is the only place that recovers it.
type Violation struct {
	Op       string // e.g. "queue push", "end panel"
	Resource string // e.g. "draw queue"
	Limit    int    // capacity involved, 0 when not applicable
	Err      error
}

func (v *Violation) Error() string {
	if v.Limit > 0 {
		return fmt.Sprintf("ui: %s: %s (%s, limit %d)", v.Op, v.Err, v.Resource, v.Limit)
	}
	if v.Resource != "" {
		return fmt.Sprintf("ui: %s: %s (%s)", v.Op, v.Err, v.Resource)
	}
	return fmt.Sprintf("ui: %s: %s", v.Op, v.Err)
}

func (v *Violation) Unwrap() error { return v.Err }

func fatal(op, resource string, limit int, err error) {
	panic(&Violation{Op: op, Resource: resource, Limit: limit, Err: err})
}
