// Package gui hosts the field renderer in a native Raylib window.
// Unlike the terminal frontend it draws at full pixel resolution with
// antialiased strokes, so line width and per-stroke alpha are honored.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/fieldviz/internal/engine"
	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/palette"
)

var (
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
)

type App struct {
	Ctrl    *engine.Controller
	Surface *Surface
	Theme   palette.Theme
	Running bool
	ShowHUD bool

	themeIdx int
}

// Surface adapts a Raylib frame to the renderer. Size reflects the
// current window, so a resize is picked up on the next Clear.
type Surface struct {
	width, height float64
	background    rl.Color
}

func (s *Surface) Size() (float64, float64) { return s.width, s.height }

func (s *Surface) Clear() {
	s.width = float64(rl.GetScreenWidth())
	s.height = float64(rl.GetScreenHeight())
	rl.ClearBackground(s.background)
}

func (s *Surface) Line(from, to field.Vec2, c palette.Color, width float64) {
	col := rl.NewColor(c.R, c.G, c.B, uint8(clamp01(c.A)*255))
	rl.DrawLineEx(
		rl.NewVector2(float32(from.X), float32(from.Y)),
		rl.NewVector2(float32(to.X), float32(to.Y)),
		float32(width),
		col,
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func initWindow(width, height int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), "fieldviz")
	rl.SetTargetFPS(60)
}

// NewApp builds an app around an already-open window. The controller is
// mounted at the current screen size and starts producing frames
// immediately.
func NewApp(cfg engine.Config, themeName string) *App {
	app := &App{
		Theme:   palette.Get(themeName),
		Running: true,
		ShowHUD: true,
	}
	for i, t := range palette.Themes {
		if t.Name == app.Theme.Name {
			app.themeIdx = i
		}
	}
	app.Surface = &Surface{background: backgroundColor(app.Theme)}
	app.Ctrl = engine.NewController(cfg, func() palette.Theme { return app.Theme })
	app.Ctrl.Mount(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	return app
}

// Run opens the window, drives the update/draw loop until the window is
// closed, and tears the controller down on exit.
func Run(cfg engine.Config, themeName string, width, height int) {
	initWindow(width, height)
	defer rl.CloseWindow()

	app := NewApp(cfg, themeName)
	defer app.Ctrl.Close()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Ctrl.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.Running = !a.Running
	case rl.IsKeyPressed(rl.KeyT):
		a.cycleTheme()
	case rl.IsKeyPressed(rl.KeyR):
		a.Ctrl.PointerLeave()
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	}

	// Pausing freezes the pointer where it was; the field keeps
	// redrawing from the same inputs.
	if !a.Running {
		return
	}
	if rl.IsCursorOnScreen() {
		pos := rl.GetMousePosition()
		a.Ctrl.PointerMove(float64(pos.X), float64(pos.Y))
	} else {
		a.Ctrl.PointerLeave()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	drawn := a.Ctrl.Frame(a.Surface)

	if a.ShowHUD {
		a.drawHUD(drawn)
	}
}

func (a *App) drawHUD(drawn int) {
	status := "running"
	if !a.Running {
		status = "paused"
	}
	rl.DrawText(fmt.Sprintf("%s  |  %s  |  %d samples  |  %d drawn",
		status, a.Theme.Name, a.Ctrl.GridSize(), drawn), 12, 12, 18, colText)
	rl.DrawText("space pause   t theme   r reset pointer   h hud", 12, 34, 16, colTextDim)
	rl.DrawFPS(int32(rl.GetScreenWidth())-96, 12)
}

func (a *App) cycleTheme() {
	a.themeIdx = (a.themeIdx + 1) % len(palette.Themes)
	a.Theme = palette.Themes[a.themeIdx]
	a.Surface.background = backgroundColor(a.Theme)
}

func backgroundColor(t palette.Theme) rl.Color {
	return rl.NewColor(t.Background.R, t.Background.G, t.Background.B, 255)
}
