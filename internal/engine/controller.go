package engine

import (
	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/palette"
)

// State is the controller lifecycle phase.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// ThemeFunc reports the active theme. The controller reads it once per
// frame, so hosts may flip themes at any time without notifying anyone.
type ThemeFunc func() palette.Theme

// Controller owns the grid, pointer state and lifecycle of one renderer.
// Pointer and resize updates are fire-and-forget writes consumed by the
// next Frame call.
type Controller struct {
	cfg     Config
	themeFn ThemeFunc

	state  State
	w, h   float64
	grid   []field.Vec2
	target field.Vec2 // most recent pointer position, or field.Absent

	// spring-eased pointer, active only with cfg.Smoothing
	spring   harmonica.Spring
	eased    field.Vec2
	velX     float64
	velY     float64
	tracking bool
}

// NewController returns an uninitialized controller. themeFn may be nil, in
// which case the dark theme renders.
func NewController(cfg Config, themeFn ThemeFunc) *Controller {
	c := &Controller{
		cfg:     cfg,
		themeFn: themeFn,
		target:  field.Absent,
		eased:   field.Absent,
	}
	if cfg.Smoothing {
		fps := cfg.FPS
		if fps <= 0 {
			fps = 60
		}
		c.spring = harmonica.NewSpring(harmonica.FPS(fps), 7.0, 0.8)
	}
	return c
}

// Mount transitions uninitialized → running and builds the initial grid.
// Mounting an already running controller acts as a resize; a destroyed one
// stays destroyed.
func (c *Controller) Mount(w, h float64) {
	if c.state == StateDestroyed {
		return
	}
	c.state = StateRunning
	c.Resize(w, h)
}

// Resize rebuilds the grid for the new viewport. The swap is atomic from
// the renderer's point of view: the next frame sees only the new points,
// never a partial grid. Zero or negative sizes degrade to an empty grid.
func (c *Controller) Resize(w, h float64) {
	if c.state != StateRunning {
		return
	}
	c.w, c.h = w, h
	c.grid = field.Grid(w, h, c.cfg.Spacing)
}

// PointerMove records the latest pointer position. No render happens here;
// the next scheduled frame consumes the value.
func (c *Controller) PointerMove(x, y float64) {
	if c.state != StateRunning {
		return
	}
	c.target = field.Vec2{X: x, Y: y}
	if !c.tracking {
		// Snap on re-entry so the eased pointer does not fly in from the
		// sentinel position.
		c.eased = c.target
		c.velX, c.velY = 0, 0
		c.tracking = true
	}
}

// PointerLeave parks the pointer at the far-off-screen sentinel; the field
// then evaluates to ~0 everywhere and the renderer draws nothing.
func (c *Controller) PointerLeave() {
	if c.state != StateRunning {
		return
	}
	c.target = field.Absent
	c.eased = field.Absent
	c.tracking = false
}

// Frame renders one frame onto s. It is the bounded unit of work the host's
// scheduler resumes every tick. A nil surface, an unmounted or destroyed
// controller, and an empty grid are all silent no-ops. Returns the number of
// vectors drawn.
func (c *Controller) Frame(s Surface) int {
	if c.state != StateRunning || s == nil {
		return 0
	}
	pointer := c.target
	if c.cfg.Smoothing && c.tracking {
		c.eased.X, c.velX = c.spring.Update(c.eased.X, c.velX, c.target.X)
		c.eased.Y, c.velY = c.spring.Update(c.eased.Y, c.velY, c.target.Y)
		pointer = c.eased
	}
	theme := palette.Dark
	if c.themeFn != nil {
		theme = c.themeFn()
	}
	return RenderFrame(s, c.grid, pointer, theme, c.cfg)
}

// Close transitions to destroyed and releases the grid. Idempotent: closing
// twice is the same as closing once, and no frame renders afterward.
func (c *Controller) Close() {
	c.state = StateDestroyed
	c.grid = nil
}

// State reports the lifecycle phase.
func (c *Controller) State() State { return c.state }

// GridSize reports the current sample-point count.
func (c *Controller) GridSize() int { return len(c.grid) }

// Pointer reports the position the next frame will render with.
func (c *Controller) Pointer() field.Vec2 {
	if c.cfg.Smoothing && c.tracking {
		return c.eased
	}
	return c.target
}

// Config returns the rendering constants the controller was built with.
func (c *Controller) Config() Config { return c.cfg }
