package ui

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestResetFrameInvariant(t *testing.T) {
	c := newTestCtx()
	c.ResetFrame()
	c.Rect(10, 10)
	c.BeginPanel()
	c.BeginAlign(AlignLeft, "x")
	c.Button("b")

	c.ResetFrame()
	if c.Queue().Len() != 0 {
		t.Fatalf("queue len = %d after reset", c.Queue().Len())
	}
	if c.Depth() != 1 {
		t.Fatalf("depth = %d after reset", c.Depth())
	}
	if got := c.Layout().Pos; got != (Point{}) {
		t.Fatalf("root cursor = %+v after reset", got)
	}
}

func TestEndFrameDetectsOpenScopes(t *testing.T) {
	c := newTestCtx()
	_, err := c.Frame(Input{}, func(c *Ctx) {
		c.BeginPanel()
		c.Rect(1, 1)
	})
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("err = %v, want ErrUnbalanced", err)
	}
	if c.Depth() != 1 || c.Queue().Len() != 0 {
		t.Fatalf("frame state not reset after violation: depth=%d len=%d", c.Depth(), c.Queue().Len())
	}
}

func TestBalancedFrameReturnsToRoot(t *testing.T) {
	c := newTestCtx()
	frame(t, c, Input{}, func(c *Ctx) {
		for i := 0; i < 5; i++ {
			c.BeginPanel()
			c.BeginAlign(AlignRight, "row")
			c.Rect(3, 3)
			c.EndAlign()
			c.EndPanel()
		}
	})
	if c.Depth() != 1 {
		t.Fatalf("depth = %d", c.Depth())
	}
}

func TestFrameReportsQueueOverflow(t *testing.T) {
	c := New(Options{})
	var pushed int
	_, err := c.Frame(Input{}, func(c *Ctx) {
		for i := 0; i < DefaultMaxCommands+1; i++ {
			c.Rect(1, 1)
			pushed++
		}
	})
	var v *Violation
	if !errors.As(err, &v) || !errors.Is(err, ErrCapacity) {
		t.Fatalf("err = %v, want capacity violation", err)
	}
	if v.Limit != DefaultMaxCommands {
		t.Fatalf("limit = %d", v.Limit)
	}
	if pushed != DefaultMaxCommands {
		t.Fatalf("the 1025th command must be the failing one, pushed %d", pushed)
	}
}

func TestFrameRepanicsForeignPanics(t *testing.T) {
	c := newTestCtx()
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	c.Frame(Input{}, func(c *Ctx) { panic("boom") })
	t.Fatal("unreachable")
}

func TestDebugReportsDuplicateIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	c := New(Options{Debug: true, Logger: logger})

	frame(t, c, Input{}, func(c *Ctx) {
		c.Button("Save")
		c.Button("Save")
		c.Button("Load")
	})
	if got := c.Stats().DuplicateIDs; got != 1 {
		t.Fatalf("DuplicateIDs = %d, want 1", got)
	}
	if !strings.Contains(buf.String(), "duplicate widget label") {
		t.Fatalf("log = %q", buf.String())
	}

	frame(t, c, Input{}, func(c *Ctx) { c.Button("Save") })
	if got := c.Stats().DuplicateIDs; got != 0 {
		t.Fatalf("duplicates leaked into the next frame: %d", got)
	}
}

func TestDebugReportsHashCollisions(t *testing.T) {
	var buf bytes.Buffer
	c := New(Options{Debug: true, Logger: slog.New(slog.NewTextHandler(&buf, nil))})
	c.ResetFrame()
	c.noteID(42, "first")
	c.noteID(42, "second")
	if c.Stats().DuplicateIDs != 1 || !strings.Contains(buf.String(), "collision") {
		t.Fatalf("collision not reported: dups=%d log=%q", c.Stats().DuplicateIDs, buf.String())
	}
}

func TestDuplicateDetectionOffByDefault(t *testing.T) {
	c := newTestCtx()
	frame(t, c, Input{}, func(c *Ctx) {
		c.Button("Save")
		c.Button("Save")
	})
	if c.Stats().DuplicateIDs != 0 {
		t.Fatal("duplicates counted without Debug")
	}
}

func TestStats(t *testing.T) {
	c := newTestCtx()
	start := c.FrameNumber()
	frame(t, c, Input{}, func(c *Ctx) {
		c.BeginPanel()
		c.BeginAlign(AlignRight, "a")
		c.Rect(1, 1)
		c.EndAlign()
		c.EndPanel()
	})
	s := c.Stats()
	if s.Commands != 2 || s.PeakDepth != 3 || s.StorageEntries != 1 || s.Frame != start+1 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestInteractionPersistsAcrossReset(t *testing.T) {
	c := newTestCtx()
	frame(t, c, press(5, 5), func(c *Ctx) { c.Button("hold") })
	c.ResetFrame()
	if c.ActiveID() != MakeID("hold") {
		t.Fatal("ResetFrame must not touch focus state")
	}
}
