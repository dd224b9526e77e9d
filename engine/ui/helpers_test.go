package ui

import (
	"errors"
	"testing"
)

// expectViolation runs f and checks that it panics with a *Violation wrapping want.
func expectViolation(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected a violation (%v), got none", want)
		}
		v, ok := r.(*Violation)
		if !ok {
			t.Fatalf("expected *Violation, got %T: %v", r, r)
		}
		if !errors.Is(v, want) {
			t.Fatalf("violation = %v, want %v", v, want)
		}
	}()
	f()
}

func newTestCtx() *Ctx {
	return New(Options{ButtonSize: Point{100, 20}})
}

// frame runs one frame with the given pointer state.
func frame(t *testing.T, c *Ctx, in Input, build func(*Ctx)) []DrawCommand {
	t.Helper()
	cmds, err := c.Frame(in, build)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	return cmds
}
