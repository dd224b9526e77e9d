package scene

import (
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestPixelCameraCorners(t *testing.T) {
	c := NewPixelCamera2D(800, 600)
	tests := []struct {
		x, y   float32
		cx, cy float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
		{800, 0, 1, 1},
	}
	for _, tt := range tests {
		cx, cy := c.Project(tt.x, tt.y)
		if !near(cx, tt.cx) || !near(cy, tt.cy) {
			t.Errorf("Project(%v,%v) = (%v,%v), want (%v,%v)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestPixelCameraResizeAndScroll(t *testing.T) {
	c := NewPixelCamera2D(100, 100)
	c.SetViewportPixels(200, 100)
	c.Move(100, 0)
	cx, cy := c.Project(100, 0)
	if !near(cx, -1) || !near(cy, 1) {
		t.Fatalf("scrolled origin = (%v,%v), want (-1,1)", cx, cy)
	}
	c.SetZoom(0)
	if c.Zoom != 0.05 {
		t.Fatalf("zoom clamp = %v", c.Zoom)
	}
}
