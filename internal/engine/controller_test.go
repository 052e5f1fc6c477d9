package engine

import (
	"testing"

	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/palette"
)

func newTestController() *Controller {
	return NewController(DefaultConfig(), func() palette.Theme { return palette.Dark })
}

func TestController_Lifecycle(t *testing.T) {
	c := newTestController()
	if c.State() != StateUninitialized {
		t.Fatalf("initial state = %v", c.State())
	}

	c.Mount(800, 600)
	if c.State() != StateRunning {
		t.Fatalf("state after mount = %v", c.State())
	}
	cols, rows := field.GridDims(800, 600, c.Config().Spacing)
	if c.GridSize() != cols*rows {
		t.Errorf("grid size = %d, want %d", c.GridSize(), cols*rows)
	}

	c.Close()
	if c.State() != StateDestroyed {
		t.Fatalf("state after close = %v", c.State())
	}
	if c.GridSize() != 0 {
		t.Error("grid must be released on close")
	}
}

func TestController_CloseIdempotent(t *testing.T) {
	c := newTestController()
	c.Mount(800, 600)
	c.Close()
	c.Close()
	if c.State() != StateDestroyed {
		t.Errorf("double close state = %v", c.State())
	}
	if drawn := c.Frame(&recordSurface{w: 800, h: 600}); drawn != 0 {
		t.Errorf("frame after close drew %d vectors", drawn)
	}
}

func TestController_MountAfterCloseStaysDestroyed(t *testing.T) {
	c := newTestController()
	c.Mount(800, 600)
	c.Close()
	c.Mount(800, 600)
	if c.State() != StateDestroyed {
		t.Errorf("state = %v, want destroyed", c.State())
	}
}

func TestController_ResizeRebuildsGrid(t *testing.T) {
	c := newTestController()
	c.Mount(800, 600)
	before := c.GridSize()

	c.Resize(400, 300)
	cols, rows := field.GridDims(400, 300, c.Config().Spacing)
	if c.GridSize() != cols*rows {
		t.Errorf("grid size after resize = %d, want %d", c.GridSize(), cols*rows)
	}
	if c.GridSize() >= before {
		t.Errorf("shrinking the viewport should shrink the grid (%d -> %d)", before, c.GridSize())
	}

	// No stale points from the larger grid may survive.
	limitX := float64(cols-1) * c.cfg.Spacing
	limitY := float64(rows-1) * c.cfg.Spacing
	for _, pt := range c.grid {
		if pt.X > limitX || pt.Y > limitY {
			t.Fatalf("stale point %v outside resized grid", pt)
		}
	}
}

func TestController_ZeroViewportDegradesToEmptyGrid(t *testing.T) {
	c := newTestController()
	c.Mount(0, 0)
	if c.State() != StateRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
	if c.GridSize() != 0 {
		t.Errorf("grid size = %d, want 0", c.GridSize())
	}
	s := &recordSurface{}
	if drawn := c.Frame(s); drawn != 0 {
		t.Errorf("drawn = %d, want 0", drawn)
	}
}

func TestController_NilSurfaceIsNoOp(t *testing.T) {
	c := newTestController()
	c.Mount(800, 600)
	c.PointerMove(400, 300)
	if drawn := c.Frame(nil); drawn != 0 {
		t.Errorf("nil surface drew %d vectors", drawn)
	}
}

func TestController_PointerConsumedByNextFrame(t *testing.T) {
	c := newTestController()
	c.Mount(800, 600)
	s := &recordSurface{w: 800, h: 600}

	if drawn := c.Frame(s); drawn != 0 {
		t.Fatalf("frame before any pointer drew %d vectors", drawn)
	}

	c.PointerMove(400, 300)
	if drawn := c.Frame(s); drawn == 0 {
		t.Error("frame after pointer move drew nothing")
	}

	c.PointerLeave()
	if c.Pointer() != field.Absent {
		t.Errorf("pointer after leave = %v, want sentinel", c.Pointer())
	}
	if drawn := c.Frame(s); drawn != 0 {
		t.Errorf("frame after pointer leave drew %d vectors", drawn)
	}
}

func TestController_SmoothingEasesTowardTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = true
	c := NewController(cfg, nil)
	c.Mount(800, 600)
	s := &recordSurface{w: 800, h: 600}

	// First move snaps, so easing starts from the entry point.
	c.PointerMove(100, 100)
	c.Frame(s)
	if c.Pointer() != (field.Vec2{X: 100, Y: 100}) {
		t.Fatalf("entry pointer = %v, want snap to (100,100)", c.Pointer())
	}

	c.PointerMove(700, 500)
	c.Frame(s)
	got := c.Pointer()
	if got.X <= 100 || got.X >= 700 {
		t.Errorf("eased x = %v, want strictly between 100 and 700", got.X)
	}

	// The spring must converge on the target.
	for i := 0; i < 600; i++ {
		c.Frame(s)
	}
	got = c.Pointer()
	if got.Dist(field.Vec2{X: 700, Y: 500}) > 1 {
		t.Errorf("eased pointer %v did not converge on target", got)
	}
}
