package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fieldviz/internal/engine"
	"github.com/san-kum/fieldviz/internal/field"
	"github.com/san-kum/fieldviz/internal/palette"
)

const (
	sidebarWidth    = 36
	historyCapacity = 240
	minCanvasW      = 20
	minCanvasH      = 6
)

var (
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).Padding(0, 2).Width(sidebarWidth)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	recordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// chrome carries the theme-tinted sidebar styles, rebuilt per render so
// cycling themes recolors the chrome along with the field.
type chrome struct {
	label lipgloss.Style
	graph lipgloss.Style
	help  lipgloss.Style
}

func themeChrome(t palette.Theme) chrome {
	return chrome{
		label: lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		graph: lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		help:  lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}

type TickMsg time.Time

// themeState is shared across Model copies so the controller's ThemeFunc
// observes theme cycling immediately.
type themeState struct {
	name string
}

// Model is the Bubble Tea program hosting the renderer: it owns the frame
// pump, feeds pointer and resize events to the controller, and draws the
// chrome around the canvas.
type Model struct {
	ctrl    *engine.Controller
	canvas  *Canvas
	surface *CanvasSurface
	theme   *themeState

	fps              int
	width, height    int // terminal cells
	canvasW, canvasH int
	running          bool
	showHelp         bool
	lastDrawn        int
	drawnHistory     []float64
	recording        bool
	frames           []*image.Paletted
}

// NewModel builds the TUI host around a fresh controller. The controller is
// mounted on the first window-size message, once the real viewport is known.
func NewModel(cfg engine.Config, themeName string) Model {
	ts := &themeState{name: palette.Get(themeName).Name}
	canvas := NewCanvas(0, 0)
	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	return Model{
		ctrl: engine.NewController(cfg, func() palette.Theme { return palette.Get(ts.name) }),
		canvas: canvas,
		surface: &CanvasSurface{
			Canvas:     canvas,
			Background: BackgroundRGB(palette.Get(themeName).Background),
		},
		theme:        ts,
		fps:          fps,
		running:      true,
		drawnHistory: make([]float64, 0, historyCapacity),
	}
}

// RunLive starts the TUI host and blocks until quit.
func RunLive(cfg engine.Config, themeName string) error {
	p := tea.NewProgram(NewModel(cfg, themeName), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and drives the frame loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.ctrl.Close()
			if m.recording {
				m.saveGIF()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.cycleTheme()
		case "r":
			m.ctrl.PointerLeave()
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.MouseMsg:
		// The canvas occupies the block under the one-line header.
		cx, cy := msg.X, msg.Y-1
		if cx >= 0 && cx < m.canvasW && cy >= 0 && cy < m.canvasH {
			m.ctrl.PointerMove(float64(cx*2+1), float64(cy*4+2))
		} else {
			m.ctrl.PointerLeave()
		}
	case TickMsg:
		if m.running {
			m.lastDrawn = m.ctrl.Frame(m.surface)
			m.drawnHistory = append(m.drawnHistory, float64(m.lastDrawn))
			if len(m.drawnHistory) > historyCapacity {
				m.drawnHistory = m.drawnHistory[1:]
			}
			if m.recording {
				m.frames = append(m.frames, m.captureFrame())
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) cycleTheme() {
	names := palette.Names()
	for i, name := range names {
		if name == m.theme.name {
			m.theme.name = names[(i+1)%len(names)]
			break
		}
	}
	m.surface.Background = BackgroundRGB(palette.Get(m.theme.name).Background)
}

// layout resizes the canvas to the terminal, reserving the header row and
// the sidebar, and resizes the controller grid in the same step so the next
// frame never renders against stale dimensions.
func (m *Model) layout() {
	cw := m.width - sidebarWidth - 1
	ch := m.height - 2
	if cw < minCanvasW {
		cw = minCanvasW
	}
	if ch < minCanvasH {
		ch = minCanvasH
	}
	if cw == m.canvasW && ch == m.canvasH {
		return
	}
	m.canvasW, m.canvasH = cw, ch
	m.canvas = NewCanvas(cw, ch)
	m.surface.Canvas = m.canvas
	m.ctrl.Mount(float64(cw*2), float64(ch*4))
}

// View renders the frame most recently drawn by the tick handler.
func (m Model) View() string {
	theme := palette.Get(m.theme.name)
	header := GradientText(" fieldviz ", theme.Near, theme.Far)

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.String(), statsStyle.BorderForeground(theme.Muted).Render(m.sidebar(theme)))
	if m.showHelp {
		return helpOverlay + "\n" + header + "\n" + main
	}
	return header + "\n" + main
}

func (m Model) sidebar(theme palette.Theme) string {
	ch := themeChrome(theme)
	var s strings.Builder

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status)
	if m.recording {
		s.WriteString("  " + recordStyle.Render("● REC"))
	}
	s.WriteString("\n\n")

	ptr := m.ctrl.Pointer()
	ptrText := "absent"
	if ptr != field.Absent {
		ptrText = fmt.Sprintf("%.0f, %.0f", ptr.X, ptr.Y)
	}
	s.WriteString(ch.label.Render("Theme") + valueStyle.Render(theme.Name) + "\n")
	s.WriteString(ch.label.Render("Pointer") + valueStyle.Render(ptrText) + "\n")
	s.WriteString(ch.label.Render("Samples") + valueStyle.Render(fmt.Sprintf("%d", m.ctrl.GridSize())) + "\n")
	s.WriteString(ch.label.Render("Drawn") + valueStyle.Render(fmt.Sprintf("%d", m.lastDrawn)) + "\n")

	if len(m.drawnHistory) > 1 {
		chart := asciigraph.Plot(m.drawnHistory,
			asciigraph.Height(4),
			asciigraph.Width(sidebarWidth-8),
			asciigraph.Caption("active vectors"),
		)
		s.WriteString(ch.graph.Render(chart) + "\n")
	}

	cfg := m.ctrl.Config()
	s.WriteString("\nTUNING\n")
	s.WriteString(ch.label.Render("spacing") + valueStyle.Render(fmt.Sprintf("%.0f px", cfg.Spacing)) + "\n")
	s.WriteString(ch.label.Render("arrow") + valueStyle.Render(fmt.Sprintf("%.0f px", cfg.ArrowLength)) + "\n")
	s.WriteString(ch.label.Render("k1, k2") + valueStyle.Render(fmt.Sprintf("%.3f, %.2f", cfg.Field.K1, cfg.Field.K2)) + "\n")
	s.WriteString(ch.label.Render("clamp") + valueStyle.Render(fmt.Sprintf("%.1f", cfg.Field.MaxStrength)) + "\n")

	s.WriteString(ch.help.Render("\n─────────────────────\nSP:Pause T:Theme R:Clear\nG:Record ?:Help Q:Quit"))
	return s.String()
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume rendering   ║
║  T        - Cycle color themes       ║
║  R        - Clear pointer (quiet)    ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// captureFrame rasterizes the canvas into a paletted image, one pixel per
// braille dot. The palette is built adaptively: background first, then up to
// 255 distinct cell colors.
func (m *Model) captureFrame() *image.Paletted {
	bg := m.surface.Background
	pal := color.Palette{color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}}
	index := map[RGB]uint8{bg: 0}

	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			_, cc, ok := m.canvas.Cell(row, col)
			if !ok {
				continue
			}
			if _, have := index[cc]; !have && len(pal) < 256 {
				index[cc] = uint8(len(pal))
				pal = append(pal, color.RGBA{R: cc.R, G: cc.G, B: cc.B, A: 255})
			}
		}
	}

	w, h := m.canvas.SubSize()
	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			r, cc, ok := m.canvas.Cell(row, col)
			if !ok || r <= 0x2800 {
				continue
			}
			idx, have := index[cc]
			if !have {
				idx = uint8(pal.Index(color.RGBA{R: cc.R, G: cc.G, B: cc.B, A: 255}))
			}
			pattern := int(r - 0x2800)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						img.SetColorIndex(col*2+dx, row*4+dy, idx)
					}
				}
			}
		}
	}
	return img
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	delay := 100 / m.fps
	if delay < 2 {
		delay = 2
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create("fieldviz.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
